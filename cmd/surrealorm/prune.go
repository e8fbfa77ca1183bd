package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete on-disk pending files newer than the latest applied migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		e := newEngine(cfg)
		pruned, err := e.Prune(context.Background())
		if err != nil {
			return err
		}
		if len(pruned) == 0 {
			fmt.Println(styleDim.Render("nothing to prune"))
			return nil
		}
		for _, name := range pruned {
			fmt.Println(styleOK.Render("pruned " + name))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pruneCmd)
}
