package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/ewallet/internal/config"
	"github.com/h4ks-com/ewallet/internal/database"
	"github.com/h4ks-com/ewallet/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			log.Fatal(err)
		}
	},
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	ledgerDB, err := database.Connect(cfg.Database.LedgerURL)
	if err != nil {
		return err
	}
	if err := database.MigrateLedger(ledgerDB); err != nil {
		return err
	}

	opts := server.Options{
		JWTSecret:    cfg.Auth.JWTSecret,
		AuthTokenTTL: cfg.Auth.AuthTokenTTL,
		AccessLog:    true,
	}
	router := server.New(server.NewServices(db, ledgerDB, opts), opts)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting eWallet server on %s", addr)
	return router.Run(addr)
}
