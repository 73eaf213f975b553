package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Sternrassler/curseforge-client/pkg/checkpoint"
	"github.com/Sternrassler/curseforge-client/pkg/client"
	"github.com/Sternrassler/curseforge-client/pkg/config"
	"github.com/Sternrassler/curseforge-client/pkg/logging"
	"github.com/Sternrassler/curseforge-client/pkg/metrics"
)

// app holds what the subcommands share once the root command has run.
type app struct {
	out    io.Writer
	cfg    *config.Config
	client *client.Client
	logger zerolog.Logger

	// store is nil unless --checkpoint is set.
	store *checkpoint.Store

	redis   *redis.Client
	metrics *http.Server
}

type rootFlags struct {
	configFile  string
	mode        string
	checkpoint  bool
	metricsAddr string
}

func newRootCommand(out io.Writer) (*cobra.Command, *app) {
	var flags rootFlags
	a := &app{out: out}

	cmd := &cobra.Command{
		Use:          "cf",
		Short:        "Query the CurseForge API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context(), cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "config file path (YAML)")
	cmd.PersistentFlags().StringVar(&flags.mode, "mode", "", "decode mode: strict, lenient or ignore")
	cmd.PersistentFlags().BoolVar(&flags.checkpoint, "checkpoint", false, "resume paginated queries from a Redis checkpoint")
	cmd.PersistentFlags().StringVar(&flags.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	cmd.AddCommand(
		newGamesCommand(a),
		newSearchCommand(a),
		newFilesCommand(a),
		newModCommand(a),
	)

	return cmd, a
}

func (a *app) setup(ctx context.Context, cmd *cobra.Command, flags rootFlags) error {
	cfg, err := config.Load(flags.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("mode") {
		cfg.Decode.Mode = flags.mode
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("metrics-addr") {
		cfg.Metrics.Address = flags.metricsAddr
	}
	a.cfg = cfg

	logging.Setup(cfg.LoggingConfig())
	a.logger = logging.NewLogger("cf")

	c, err := client.New(cfg.ClientConfig())
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	a.client = c

	if flags.checkpoint {
		if !cfg.CheckpointsEnabled() {
			return errors.New("--checkpoint requires redis.address (CURSEFORGE_REDIS_ADDRESS)")
		}
		a.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})
		if err := a.redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.Address, err)
		}
		a.store = checkpoint.New(a.redis)
	}

	if cfg.Metrics.Address != "" {
		a.metrics = metrics.NewServer(cfg.Metrics.Address)
		go func() {
			if err := a.metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error().Err(err).Str("addr", cfg.Metrics.Address).Msg("Metrics server failed")
			}
		}()
		a.logger.Info().Str("addr", cfg.Metrics.Address).Msg("Serving metrics")
	}

	return nil
}

// teardown is safe to call after a partial or skipped setup.
func (a *app) teardown() error {
	var errs []error
	if a.metrics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		errs = append(errs, a.metrics.Shutdown(ctx))
	}
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if a.client != nil {
		errs = append(errs, a.client.Close())
	}
	return errors.Join(errs...)
}
