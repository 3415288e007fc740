package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"jungtsi/internal/config"
	"jungtsi/internal/logging"
	"jungtsi/internal/server"
	"jungtsi/internal/store"
)

var serveFlags struct {
	configPath string
	addr       string
	dbPath     string
	noArchive  bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: "Serves the calculation API over HTTP. Computed reports are archived\n" +
		"to a local SQLite database unless --no-archive is given. Flags override\n" +
		"values from the config file.",
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&serveFlags.configPath, "config", "", "Path to a YAML or JSON config file")
	f.StringVar(&serveFlags.addr, "addr", "", "Listen address, e.g. :8080")
	f.StringVar(&serveFlags.dbPath, "db", "", "Path to the report archive database")
	f.BoolVar(&serveFlags.noArchive, "no-archive", false, "Disable report archiving")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if serveFlags.configPath != "" {
		var err error
		cfg, err = config.LoadFromPath(serveFlags.configPath)
		if err != nil {
			return err
		}
	}
	if serveFlags.addr != "" {
		cfg.Addr = serveFlags.addr
	}
	if serveFlags.dbPath != "" {
		cfg.DBPath = serveFlags.dbPath
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.Init(level, cfg.LogFormat)

	var archive *store.Store
	if !serveFlags.noArchive {
		archive, err = store.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open archive: %w", err)
		}
		defer archive.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg.Addr, version, archive).Run(ctx)
}
