package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madeindigio/surrealorm/pkg/migrator"
)

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back applied migrations on the live database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		to, _ := cmd.Flags().GetString("to")
		count, _ := cmd.Flags().GetInt("count")
		previous, _ := cmd.Flags().GetBool("previous")

		e := newEngine(cfg)
		rolledBack, err := e.Down(context.Background(), migrator.DownOptions{To: to, Count: count, Previous: previous})
		if err != nil {
			return err
		}
		if len(rolledBack) == 0 {
			fmt.Println(styleDim.Render("nothing to roll back"))
			return nil
		}
		for _, name := range rolledBack {
			fmt.Println(styleOK.Render("rolled back " + name))
		}
		return nil
	},
}

func init() {
	downCmd.Flags().String("to", "", "Roll back down to and including this migration")
	downCmd.Flags().Int("count", 0, "Roll back at most this many applied migrations")
	downCmd.Flags().Bool("previous", false, "Roll back only the most recently applied migration")
	rootCmd.AddCommand(downCmd)
}
