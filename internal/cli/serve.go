package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vishant-raz/notion-gpt-api/internal/logger"
	"github.com/vishant-raz/notion-gpt-api/internal/notion"
	"github.com/vishant-raz/notion-gpt-api/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	client, err := buildGateway()
	if err != nil {
		return err
	}

	srv := server.New(cfg, client)
	logger.Info("Server starting", logger.F("port", cfg.Port))
	if err := srv.Start(":" + cfg.Port); err != nil {
		logger.Error("Server failed", logger.F("error", err))
		return err
	}
	return nil
}

// buildGateway validates configuration, constructs the store client and
// verifies the database schema. Any failure here aborts startup.
func buildGateway() (*notion.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := notion.NewClient(cfg.NotionToken, cfg.NotionDatabaseID)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := client.ValidateSchema(ctx); err != nil {
		return nil, fmt.Errorf("startup schema check failed: %w", err)
	}

	return client, nil
}
