package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Create the first migration file(s) from the current codebase schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		run, _ := cmd.Flags().GetBool("run")
		reversible, _ := cmd.Flags().GetBool("reversible")

		e := newEngine(cfg)
		plan, err := e.Init(context.Background(), args[0], run, reversible)
		if err != nil {
			return err
		}
		printPlan(plan)
		fmt.Println(styleOK.Render("migration initialized"))
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("run", false, "Apply the generated migration to the live database immediately")
	initCmd.Flags().Bool("reversible", true, "Emit an up/down pair instead of a one-way file")
	rootCmd.AddCommand(initCmd)
}
