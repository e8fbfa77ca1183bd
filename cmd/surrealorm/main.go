// Package main is the entry point for the surrealorm migration CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/madeindigio/surrealorm/pkg/migrator"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		printCLIError(err)
		os.Exit(1)
	}
}

// printCLIError renders err the way spec §6.3 requires: a single line naming
// the typed error's kind plus its captured context.
func printCLIError(err error) {
	var me *migrator.Error
	if errors.As(err, &me) {
		fmt.Fprintln(os.Stderr, styleError.Render(fmt.Sprintf("%s: %s", me.Kind, me.Message)))
		return
	}
	fmt.Fprintln(os.Stderr, styleError.Render(err.Error()))
}
