package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matthewbaird/showcase/internal/activity"
	"github.com/matthewbaird/showcase/internal/config"
	"github.com/matthewbaird/showcase/internal/database"
	"github.com/matthewbaird/showcase/internal/event"
	"github.com/matthewbaird/showcase/internal/eventbus"
	"github.com/matthewbaird/showcase/internal/listing"
	"github.com/matthewbaird/showcase/internal/logging"
	"github.com/matthewbaird/showcase/internal/portfolio"
	"github.com/matthewbaird/showcase/internal/resume"
	"github.com/matthewbaird/showcase/internal/seed"
	"github.com/matthewbaird/showcase/internal/server"
	"github.com/matthewbaird/showcase/internal/session"
	"github.com/matthewbaird/showcase/internal/types"
	"github.com/matthewbaird/showcase/internal/watch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	envFile string
	verbose bool
	port    int
	backend string
	noSeed  bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd serves the API when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "showcase",
	Short: "Property listing dashboard and portfolio wizard API",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return err
		}
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP and WebSocket server",
	RunE:  runServe,
}

var checkCatalogCmd = &cobra.Command{
	Use:   "check-catalog [file]",
	Short: "Validate a CUE property catalog (the built-in one by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheckCatalog,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Path to a .env file (default: ./.env if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	for _, cmd := range []*cobra.Command{rootCmd, serveCmd} {
		cmd.Flags().IntVar(&port, "port", 0, "Listen port (overrides PORT)")
		cmd.Flags().StringVar(&backend, "store", "", "Store backend: memory or sqlite (overrides STORE_BACKEND)")
		cmd.Flags().BoolVar(&noSeed, "no-seed", false, "Do not seed the demo catalog")
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCatalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	if port != 0 {
		cfg.Port = port
	}
	if backend != "" {
		cfg.StoreBackend = backend
	}
	if noSeed {
		cfg.SeedCatalog = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx)
	if err != nil {
		return err
	}
	defer st.close()

	if cfg.SeedCatalog {
		props, err := seed.DemoCatalog()
		if err != nil {
			return fmt.Errorf("loading demo catalog: %w", err)
		}
		if err := seed.SeedProperties(ctx, st.properties, props); err != nil {
			return err
		}
	}

	// Event plumbing: handlers record → activity store → bus → log + live views.
	activityStore := activity.NewMemoryStore()
	hub := watch.NewHub()
	bus := eventbus.New(cfg.EventBuffer, logger)
	bus.Subscribe("log", eventbus.NewLogConsumer(logger))
	bus.Subscribe("watch", hub)
	bus.Start(ctx)
	defer bus.Stop()

	recorder := event.NewActivityRecorder(activityStore)
	recorder.SetPublisher(bus)

	sessions := session.NewManager(cfg.SessionMaxAge, cfg.SessionIdleTimeout)
	go sessions.Run(ctx, time.Minute)

	router := server.NewRouter(server.Deps{
		Catalog:    listing.NewCatalog(st.properties),
		Portfolios: st.portfolios,
		Resumes:    st.resumes,
		Sessions:   sessions,
		Activity:   activityStore,
		Recorder:   recorder,
		Hub:        hub,
		Logger:     logger,
	})

	logger.Info("configured",
		zap.String("store", cfg.StoreBackend),
		zap.Bool("seeded", cfg.SeedCatalog))
	return server.Run(ctx, server.Config{Port: cfg.Port}, router, logger)
}

type stores struct {
	properties listing.Store
	portfolios portfolio.Store
	resumes    resume.Store
	close      func()
}

// openStores returns the stores for the configured backend.
func openStores(ctx context.Context) (stores, error) {
	if cfg.StoreBackend != config.BackendSQLite {
		return stores{
			properties: listing.NewMemoryStore(),
			portfolios: portfolio.NewMemoryStore(),
			resumes:    resume.NewMemoryStore(),
			close:      func() {},
		}, nil
	}

	drv, err := database.OpenAndMigrate(ctx, cfg.DatabaseURL)
	if err != nil {
		return stores{}, err
	}
	logger.Info("database migrated successfully")
	return stores{
		properties: listing.NewSQLStore(drv),
		portfolios: portfolio.NewSQLStore(drv),
		resumes:    resume.NewSQLStore(drv),
		close:      func() { drv.Close() },
	}, nil
}

func runCheckCatalog(cmd *cobra.Command, args []string) error {
	var (
		props []types.Property
		err   error
	)
	if len(args) == 1 {
		props, err = seed.LoadCatalogFile(args[0])
	} else {
		props, err = seed.DemoCatalog()
	}
	if err != nil {
		return err
	}
	for _, p := range props {
		fmt.Fprintf(cmd.OutOrStdout(), "%-10s %14s  %s\n", p.Type, event.FormatINR(p.Price), p.Name)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d properties OK\n", len(props))
	return nil
}
