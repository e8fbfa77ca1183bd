package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/madeindigio/surrealorm/pkg/migrator"
)

var generateCmd = &cobra.Command{
	Use:   "generate <name>",
	Short: "Diff the migrations directory against the codebase and emit a new migration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		reversible, _ := cmd.Flags().GetBool("reversible")
		watch, _ := cmd.Flags().GetBool("watch")
		watchDir, _ := cmd.Flags().GetString("watch-dir")

		e := newEngine(cfg)
		if err := runGenerate(e, args[0], reversible); err != nil {
			return err
		}
		if !watch {
			return nil
		}
		return watchAndRegenerate(cmd.Context(), watchDir, e, args[0], reversible)
	},
}

// runGenerate diffs the migrations directory against the codebase once and
// writes the resulting plan, the body shared between a plain `generate` and
// each re-run `generate --watch` triggers.
func runGenerate(e *migrator.Engine, name string, reversible bool) error {
	plan, err := e.Generate(context.Background())
	if err != nil {
		return err
	}
	upPath, downPath, err := e.WritePlan(plan, name, reversible)
	if err != nil {
		return err
	}
	printPlan(plan)
	if upPath == "" {
		fmt.Println(styleDim.Render("no migration file written"))
		return nil
	}
	fmt.Println(styleOK.Render("wrote " + upPath))
	if downPath != "" {
		fmt.Println(styleOK.Render("wrote " + downPath))
	}
	return nil
}

// watchAndRegenerate watches watchDir (recursively, since fsnotify itself
// isn't recursive) for .go source changes and re-runs generate on every
// debounced batch of writes, following the teacher's watch-and-debounce
// idiom from its code indexer's file watcher.
func watchAndRegenerate(ctx context.Context, watchDir string, e *migrator.Engine, name string, reversible bool) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("generate --watch: %w", err)
	}
	defer fw.Close()

	err = filepath.WalkDir(watchDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if d.Name() != "." && (d.Name() == ".git" || d.Name() == "migrations") {
				return filepath.SkipDir
			}
			if werr := fw.Add(path); werr != nil {
				slog.Warn("generate --watch: failed to watch directory", "path", path, "error", werr)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("generate --watch: %w", err)
	}

	fmt.Println(styleDim.Render("watching " + watchDir + " for model changes (ctrl-c to stop)"))

	debounce := make(map[string]time.Time)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Ext(evt.Name) != ".go" {
				continue
			}
			if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				debounce[evt.Name] = time.Now()
			}
		case werr, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("generate --watch: watcher error", "error", werr)
		case now := <-ticker.C:
			if len(debounce) == 0 {
				continue
			}
			stale := false
			for _, t := range debounce {
				if now.Sub(t) > 300*time.Millisecond {
					stale = true
				}
			}
			if !stale {
				continue
			}
			debounce = make(map[string]time.Time)
			fmt.Println(styleDim.Render("change detected, regenerating..."))
			if err := runGenerate(e, name, reversible); err != nil {
				slog.Warn("generate --watch: regenerate failed", "error", err)
			}
		}
	}
}

func init() {
	generateCmd.Flags().Bool("reversible", true, "Emit an up/down pair instead of a one-way file")
	generateCmd.Flags().Bool("watch", false, "Keep running and re-generate whenever a .go model file changes")
	generateCmd.Flags().String("watch-dir", ".", "Directory to watch for model changes (with --watch)")
	rootCmd.AddCommand(generateCmd)
}
