package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every migration file and registry row",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		e := newEngine(cfg)
		if err := e.Reset(context.Background()); err != nil {
			return err
		}
		fmt.Println(styleOK.Render("migrations directory and registry reset"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
