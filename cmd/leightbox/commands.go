package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rescp17/leightbox/internal/app"
	"github.com/rescp17/leightbox/internal/config"
	"github.com/rescp17/leightbox/internal/session"
)

type rootOptions struct {
	configPath string
	cfg        *config.Config
	logFile    io.Closer
}

// newRootCmd builds the command tree. The caller closes the log file opened by
// the command with opts.teardown once execution is over, whatever its result.
func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leightbox",
		Short: "A dashboard for sharing files on a local network",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/leightbox/config.yaml)")
	flags.Duration("tick-rate", 200*time.Millisecond, "Interval of the periodic tick")
	flags.String("log-file", "debug.log", "File the log is written to")
	flags.Bool("debug", false, "Log debug messages")

	cmd.AddCommand(newClientCmd(opts), newServerCmd(opts))
	return cmd
}

// setup loads the configuration and sends every log line to the log file,
// since the terminal belongs to the dashboard.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	o.cfg = cfg

	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	o.logFile = f

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	// also routes the standard log package into the file
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	slog.Debug("Config loaded", "tick_rate", cfg.TickRate, "title", cfg.Title, "log_file", cfg.LogFile)
	return nil
}

func (o *rootOptions) teardown() error {
	if o.logFile == nil {
		return nil
	}
	if err := o.logFile.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	o.logFile = nil
	return nil
}

func newClientCmd(root *rootOptions) *cobra.Command {
	var target, password string
	var demo bool

	cmd := &cobra.Command{
		Use:   "client",
		Short: "Connect to a host and pick files to download",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.NewClientSession(app.ClientOptions{
				Title:    root.cfg.Title,
				Target:   target,
				Password: password,
				Demo:     demo,
			})
			if err != nil {
				return err
			}
			return run(root, sess)
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", "IPv4 address of the host")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password of the host")
	cmd.Flags().BoolVar(&demo, "demo", false, "Fill the catalogue with random files")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newServerCmd(root *rootOptions) *cobra.Command {
	var folder, password string
	var demo bool

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Share a folder with clients on the local network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.NewHostSession(app.HostOptions{
				Title:    root.cfg.Title,
				Folder:   folder,
				Password: password,
				Demo:     demo,
			})
			if err != nil {
				return err
			}
			return run(root, sess)
		},
	}

	cmd.Flags().StringVarP(&folder, "folder", "f", "", "Folder to share")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password clients must give (generated when empty)")
	cmd.Flags().BoolVar(&demo, "demo", false, "Show random connected peers")
	_ = cmd.MarkFlagRequired("folder")
	return cmd
}

func run(root *rootOptions, sess *session.Session) error {
	return app.Run(root.cfg, sess)
}
