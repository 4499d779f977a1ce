package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lingolog/lingolog/api"
	"github.com/lingolog/lingolog/api/auth"
	"github.com/lingolog/lingolog/config"
	"github.com/lingolog/lingolog/database"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the lingolog server",
	Long:  `Start the lingolog server to track watched videos and daily learning targets.`,
	Example: `lingolog serve --config config.yml
lingolog serve -c /path/to/config.yml --log-level debug
`,
	Run: startServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func startServer(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if rootCmdPersistentFlags.LogLevel != "" {
		setLogLevel(rootCmdPersistentFlags.LogLevel)
	} else {
		setLogLevel(cfg.LogLevel)
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if err := bootstrapAdmin(ctx, cfg, db); err != nil {
		log.Fatalf("failed to bootstrap admin user: %v", err)
	}

	server, err := api.New(cfg, db, log.GetLevel() == log.DebugLevel)
	if err != nil {
		log.Fatalf("failed to create API server: %v", err)
	}

	// Start the API server in a goroutine
	go func() {
		log.Info("starting API server", "listen", cfg.Listen)
		if err := server.Run(); err != nil {
			log.Error("API server error", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	log.Info("lingolog started successfully")
	<-c
	log.Info("shutting down gracefully...")

	// Give time for graceful shutdown
	cancel()
	time.Sleep(2 * time.Second)
}

// bootstrapAdmin creates the configured admin account if it doesn't exist
// yet, so a fresh install has a way to log in.
func bootstrapAdmin(ctx context.Context, cfg *config.Config, db database.DB) error {
	if cfg.Admin == nil || cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		log.Debug("no admin bootstrap configured, skipping")
		return nil
	}

	_, err := db.GetUserByUsername(ctx, cfg.Admin.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}
	if _, err := db.CreateUser(ctx, cfg.Admin.Username, hash, true); err != nil {
		return err
	}

	log.Info("created admin user", "username", cfg.Admin.Username)
	return nil
}
