package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/madeindigio/surrealorm/internal/config"
	"github.com/madeindigio/surrealorm/internal/dbsession"
	"github.com/madeindigio/surrealorm/pkg/migrator"
	"github.com/madeindigio/surrealorm/pkg/version"
)

var (
	styleError = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	styleOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleHead  = lipgloss.NewStyle().Bold(true)
)

var rootCmd = &cobra.Command{
	Use:          "surrealorm",
	Short:        "Typed SurrealDB query builder and schema-migration CLI",
	Version:      version.Describe(),
	SilenceUsage: true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "memory", `URL for the SurrealDB instance (use "memory" for an embedded in-memory instance)`)
	flags.String("user", "root", "Username for SurrealDB")
	flags.String("pass", "root", "Password for SurrealDB")
	flags.String("ns", "test", "Namespace for SurrealDB")
	flags.String("db-name", "test", "Database for SurrealDB")
	flags.String("migrations-dir", "./migrations", "Directory holding migration files")
	flags.String("mode", "strict", "Ambiguity resolution mode: strict or relaxed")
	flags.BoolP("verbose", "v", false, "Enable verbose logging")
	flags.String("log", "", "Path to the log file (logs are written to both stderr and file)")
	flags.Bool("disable-output-log", false, "Disable logging to stdout/stderr; only write to log file if configured")

	_ = viper.BindPFlags(flags)
	viper.SetEnvPrefix("SURREALORM")
	viper.AutomaticEnv()
}

// loadConfig reads the bound persistent flags (and SURREALORM_* environment
// variables) into a config.Config, validating it the same way config.Load
// would for a single-command program.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{
		SurrealDBURL:       viper.GetString("db"),
		SurrealDBUser:      viper.GetString("user"),
		SurrealDBPass:      viper.GetString("pass"),
		SurrealDBNamespace: viper.GetString("ns"),
		SurrealDBDatabase:  viper.GetString("db-name"),
		MigrationsDir:      viper.GetString("migrations-dir"),
		Mode:               viper.GetString("mode"),
		Verbose:            viper.GetBool("verbose"),
		LogFile:            viper.GetString("log"),
		DisableOutputLog:   viper.GetBool("disable-output-log"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.SetupLogging(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newEngine builds the migrator.Engine shared by every subcommand, wiring
// the live database config and the codebase's desired-state resources
// (spec §4.5's Engine, §6.3's common --db/--ns/--db-name/--user/--pass/
// --migrations-dir/--mode flags).
func newEngine(cfg *config.Config) *migrator.Engine {
	e := &migrator.Engine{
		MigrationsDir: cfg.MigrationsDir,
		LiveDB: dbsession.Config{
			URL:       cfg.SurrealDBURL,
			Username:  cfg.SurrealDBUser,
			Password:  cfg.SurrealDBPass,
			Namespace: cfg.GetSurrealDBNamespace(),
			Database:  cfg.GetSurrealDBDatabase(),
		},
		Resources: codebaseResources,
	}
	if cfg.Relaxed() {
		e.Prompter = migrator.InteractivePrompter{}
	} else {
		e.Prompter = migrator.FailOnAmbiguityPrompter{}
	}
	return e
}

func printPlan(plan *migrator.Plan) {
	if plan.Empty() {
		fmt.Println(styleDim.Render("(no schema changes detected)"))
		return
	}
	fmt.Println(styleHead.Render("-- up"))
	for _, s := range plan.UpStatements {
		fmt.Println(s)
	}
	fmt.Println(styleHead.Render("-- down"))
	for _, s := range plan.DownStatements {
		fmt.Println(s)
	}
}
