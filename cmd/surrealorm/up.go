package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madeindigio/surrealorm/pkg/migrator"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations to the live database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		to, _ := cmd.Flags().GetString("to")
		count, _ := cmd.Flags().GetInt("count")
		latest, _ := cmd.Flags().GetBool("latest")

		e := newEngine(cfg)
		applied, err := e.Up(context.Background(), migrator.UpOptions{To: to, Count: count, Latest: latest})
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			fmt.Println(styleDim.Render("nothing to apply"))
			return nil
		}
		for _, name := range applied {
			fmt.Println(styleOK.Render("applied " + name))
		}
		return nil
	},
}

func init() {
	upCmd.Flags().String("to", "", "Apply up to and including this migration")
	upCmd.Flags().Int("count", 0, "Apply at most this many pending migrations")
	upCmd.Flags().Bool("latest", true, "Apply every pending migration")
	rootCmd.AddCommand(upCmd)
}
