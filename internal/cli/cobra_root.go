package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"control-horas/internal/config"
)

// AppFactory builds the application against the effective configuration.
// It runs lazily, after flag overrides have been applied, so advertised
// flags like --hourly-rate reach the wired services.
type AppFactory func(ctx context.Context, cfg *config.Config) (*App, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	config  *config.Config
	factory AppFactory
	app     *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config, factory AppFactory) *RootCommand {
	root := &RootCommand{
		config:  cfg,
		factory: factory,
	}

	root.cmd = &cobra.Command{
		Use:   "horas",
		Short: "Personal time tracking and billing",
		Long: `Control de Horas (horas) tracks billable time per trip and renders monthly
PDF invoices.

EXAMPLES:
  horas add --hours 2 --minutes 30                 # Record a manual session
  horas add --trip Visita --date 2024-03-07        # Record against a trip type
  horas timer                                      # Interactive stopwatch
  horas list                                       # Show entries and totals
  horas export                                     # Write the PDF invoice
  horas delete 1709823845000                       # Remove an entry by id
  horas reset                                      # Clear the month
  horas theme light                                # Switch presentation theme

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Billing:
    HORAS_HOURLY_RATE                      Billing rate per hour (default: 625)
    HORAS_CURRENCY_SYMBOL                  Currency symbol (default: $)

  Database:
    HORAS_DB_BACKEND                       sqlite or postgres (default: sqlite)
    HORAS_DB_DIR                           Database directory (default: ~/.horas)
    HORAS_DB_FILENAME                      Database filename (default: horas.db)
    DATABASE_URL                           Connection string for the postgres backend

  Application:
    HORAS_APP_TIMEOUT                      Command timeout (default: 60s)
    HORAS_APP_VERBOSE                      Enable verbose output (default: false)
    HORAS_LOG_LEVEL                        Log level (default: WARN)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Close releases the application resources when a command built them.
func (r *RootCommand) Close() error {
	if r.app == nil {
		return nil
	}
	return r.app.Close()
}

// getApp builds the application on first use. By the time a RunE calls this
// the persistent pre-run has already folded flag overrides into r.config.
func (r *RootCommand) getApp(ctx context.Context) (*App, error) {
	if r.app != nil {
		return r.app, nil
	}
	app, err := r.factory(ctx, r.config)
	if err != nil {
		return nil, err
	}
	r.app = app
	return app, nil
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.Float64("hourly-rate", 0, "Billing rate per hour (overrides HORAS_HOURLY_RATE)")
	flags.String("currency", "", "Currency symbol (overrides HORAS_CURRENCY_SYMBOL)")

	flags.String("db-backend", "", "Database backend, sqlite or postgres (overrides HORAS_DB_BACKEND)")
	flags.String("db-dir", "", "Database directory (overrides HORAS_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides HORAS_DB_FILENAME)")
	flags.String("database-url", "", "Postgres connection string (overrides DATABASE_URL)")

	flags.String("default-trip", "", "Default trip type (overrides HORAS_DEFAULT_TRIP_TYPE)")

	flags.Duration("app-timeout", 0, "Application timeout (overrides HORAS_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides HORAS_APP_VERBOSE)")
}

// getConfigFromFlags applies configuration overrides from changed flags
func (r *RootCommand) getConfigFromFlags() error {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("hourly-rate") {
		v, _ := flags.GetFloat64("hourly-rate")
		overrides.HourlyRate = &v
	}
	if flags.Changed("currency") {
		v, _ := flags.GetString("currency")
		overrides.CurrencySymbol = &v
	}
	if flags.Changed("db-backend") {
		v, _ := flags.GetString("db-backend")
		overrides.DBBackend = &v
	}
	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		overrides.DBDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("database-url") {
		v, _ := flags.GetString("database-url")
		overrides.DBURL = &v
	}
	if flags.Changed("default-trip") {
		v, _ := flags.GetString("default-trip")
		overrides.DefaultTripType = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	loader := config.NewLoader()
	cfg, err := loader.LoadWithOverrides(overrides)
	if err != nil {
		return err
	}

	*r.config = *cfg
	return nil
}

// getAppTimeout returns the configured per-command timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	return r.config.Application.Timeout
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	var addOpts AddOptions

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a manual billing entry",
		Long: `Record a manually timed session. The duration is the sum of --hours and
--minutes and must be positive. The entry date defaults to today.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			app, err := r.getApp(ctx)
			if err != nil {
				return err
			}
			app.LoadSession(ctx)
			if addOpts.TripType == "" {
				addOpts.TripType = r.config.Form.DefaultTripType
			}
			if addOpts.Date == "" {
				addOpts.Date = time.Now().Format("2006-01-02")
			}
			return NewAddCommand(app).Execute(ctx, addOpts)
		},
	}
	addCmd.Flags().StringVar(&addOpts.TripType, "trip", "", "Trip type (default: the configured default trip)")
	addCmd.Flags().StringVar(&addOpts.CustomTrip, "custom-trip", "", "Custom trip label, used with --trip custom")
	addCmd.Flags().StringVar(&addOpts.Date, "date", "", "Entry date in YYYY-MM-DD form (default: today)")
	addCmd.Flags().Float64Var(&addOpts.Hours, "hours", 0, "Whole hours worked")
	addCmd.Flags().Float64Var(&addOpts.Minutes, "minutes", 0, "Minutes worked")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List entries and totals",
		Long:  "List the recorded entries, most recent first, followed by the month totals.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			app, err := r.getApp(ctx)
			if err != nil {
				return err
			}
			app.LoadSession(ctx)
			return NewListCommand(app).Execute(ctx, args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			app, err := r.getApp(ctx)
			if err != nil {
				return err
			}
			app.LoadSession(ctx)
			return NewDeleteCommand(app).Execute(ctx, args)
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Render the PDF invoice",
		Long: `Render the recorded entries to a PDF invoice. The filename defaults to
facturacion_<date>.pdf in the working directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			app, err := r.getApp(ctx)
			if err != nil {
				return err
			}
			app.LoadSession(ctx)
			return NewExportCommand(app).Execute(ctx, args)
		},
	}

	var resetForce bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove every entry for the month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			app, err := r.getApp(ctx)
			if err != nil {
				return err
			}
			app.LoadSession(ctx)
			return NewResetCommand(app).Execute(ctx, resetForce)
		},
	}
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip the confirmation prompt")

	themeCmd := &cobra.Command{
		Use:   "theme [dark|light]",
		Short: "Show or set the presentation theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			app, err := r.getApp(ctx)
			if err != nil {
				return err
			}
			return NewThemeCommand(app).Execute(ctx, args)
		},
	}

	timerCmd := &cobra.Command{
		Use:   "timer",
		Short: "Interactive stopwatch",
		Long:  "Run the interactive stopwatch screen and save finished sessions as entries.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The screen runs until the user quits; no command timeout.
			ctx := context.Background()

			app, err := r.getApp(ctx)
			if err != nil {
				return err
			}
			app.LoadSession(ctx)
			return NewTimerCommand(app).Execute(ctx)
		},
	}

	r.cmd.AddCommand(addCmd, listCmd, deleteCmd, exportCmd, resetCmd, themeCmd, timerCmd)
}
