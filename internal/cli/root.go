package cli

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idilsaglam/shopping/internal/config"
	"github.com/idilsaglam/shopping/internal/log"
	"github.com/idilsaglam/shopping/internal/store"
	"github.com/idilsaglam/shopping/internal/store/jsonstore"
	"github.com/idilsaglam/shopping/internal/tui"
	"github.com/idilsaglam/shopping/internal/ui"
)

// App carries state shared by every subcommand once config is loaded.
type App struct {
	v          *viper.Viper
	configFile string

	cfg    *config.Config
	log    zerolog.Logger
	closer io.Closer
}

// newStore builds the session store from the seed file, or the built-in
// list, with the configured filters applied.
func (a *App) newStore() (*store.Store, error) {
	seed := store.DefaultSeed()
	if a.cfg.SeedFile != "" {
		items, err := jsonstore.Load(a.cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		seed = items
	}
	s := store.New(seed, store.WithLogger(a.log))
	s.SetHideCompleted(a.cfg.HideCompleted)
	s.SetSearchTerm(a.cfg.SearchTerm)
	return s, nil
}

func NewRootCmd() *cobra.Command {
	app := &App{v: viper.New()}

	cmd := &cobra.Command{
		Use:           "shopping",
		Short:         "An interactive shopping list",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive list
  shopping

  # Start from your own list, with checked items hidden
  shopping --seed groceries.yaml --hide-completed

  # Print the list once
  shopping ls --search milk
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newStore()
			if err != nil {
				return err
			}
			return tui.Run(s, tui.Options{Logger: app.log})
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&app.configFile, "config", "", "config file (default ./shopping.yaml or ~/.config/shopping/shopping.yaml)")
	f.String("seed", "", "JSON or YAML file with the starting list")
	f.String("theme", "classic", "theme: classic, neon or mono")
	f.Bool("hide-completed", false, "hide checked items")
	f.String("search", "", "only show items whose name contains this text (case-sensitive)")
	f.String("log-file", "", "write debug logs to this file")
	f.String("log-level", "info", "log level: debug, info, warn, error")

	for key, flag := range map[string]string{
		"seed":           "seed",
		"theme":          "theme",
		"hide_completed": "hide-completed",
		"search":         "search",
		"log.file":       "log-file",
		"log.level":      "log-level",
	} {
		_ = app.v.BindPFlag(key, f.Lookup(flag))
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(app.v, app.configFile)
		if err != nil {
			return err
		}
		app.cfg = cfg

		logger, closer, err := log.New(cfg.Log)
		if err != nil {
			return err
		}
		app.log, app.closer = logger, closer

		if !ui.SetTheme(cfg.Theme) {
			app.log.Warn().Str("theme", cfg.Theme).Msg("unknown theme, using classic")
		}
		return nil
	}

	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.closer != nil {
			return app.closer.Close()
		}
		return nil
	}

	cmd.AddCommand(newListCmd(app))
	return cmd
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		ui.Fail(os.Stderr, err.Error())
		return 1
	}
	return 0
}
