package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Report every on-disk migration's applied/pending status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")

		e := newEngine(cfg)
		entries, err := e.List(context.Background())
		if err != nil {
			return err
		}

		if format == "yaml" {
			out, err := yaml.Marshal(entries)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		}

		if len(entries) == 0 {
			fmt.Println(styleDim.Render("no migrations found"))
			return nil
		}
		for _, en := range entries {
			status := styleDim.Render("pending")
			if en.Applied {
				status = styleOK.Render("applied")
			}
			fmt.Printf("%-6s %s\n", status, en.Name)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().String("format", "text", `Output format: "text" or "yaml"`)
	rootCmd.AddCommand(listCmd)
}
