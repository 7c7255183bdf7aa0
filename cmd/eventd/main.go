package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"eventd/internal/config"
	"eventd/internal/httpapi"
	"eventd/internal/hub"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "eventd",
		Short:         "In-process event hub with an HTTP control surface",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd())
	return root
}

// envDefault lets flags default from EVENTD_* environment variables.
func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func serveCmd() *cobra.Command {
	var (
		addr    string
		cfgPath string
		logLvl  string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the event hub daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, cfgPath, logLvl)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", envDefault("EVENTD_ADDR", ":8080"), "HTTP listen address, e.g. :8080")
	cmd.Flags().StringVar(&cfgPath, "config", envDefault("EVENTD_CONFIG", ""), "Path to a yaml/json/toml config file")
	cmd.Flags().StringVar(&logLvl, "log-level", envDefault("EVENTD_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")
	return cmd
}

func runServe(addr, cfgPath, logLvl string) error {
	var cfg config.Config
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if cfg.LogLevel != "" {
		logLvl = cfg.LogLevel
	}
	lvl, err := zerolog.ParseLevel(logLvl)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()

	if cfg.Addr != "" {
		addr = cfg.Addr
	}
	history := cfg.History
	if history <= 0 {
		history = 256
	}

	channels := make([]hub.ChannelSpec, 0, len(cfg.Channels))
	for _, c := range cfg.Channels {
		channels = append(channels, hub.ChannelSpec{Name: c.Name, Sinks: c.Sinks})
	}
	h, err := hub.New(log, history, channels)
	if err != nil {
		return err
	}

	httpapi.SetLogger(log)
	srv := &http.Server{Addr: addr, Handler: httpapi.NewMux(h)}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Int("channels", len(channels)).Msg("eventd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-stop:
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
	}
	return nil
}
