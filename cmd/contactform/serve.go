package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/goatkit/contactform/internal/api"
	"github.com/goatkit/contactform/internal/config"
	"github.com/goatkit/contactform/internal/helpdesk"
	"github.com/goatkit/contactform/internal/web"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the contact form HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				// Refuse to serve without credentials.
				return fmt.Errorf("configuration: %w", err)
			}

			logger := log.Default()
			client := helpdesk.NewHTTPClient(cfg.APIURL, cfg.APIKey)
			handler := api.NewSubmissionHandler(client, api.WithLogger(logger))

			page, err := web.NewPageHandler(cfg.LabelTypeIDs)
			if err != nil {
				return fmt.Errorf("page template: %w", err)
			}

			router := api.NewRouter(handler, page.Handle, logger)
			logger.Printf("contact form listening on %s", cfg.ListenAddr)
			return router.Run(cfg.ListenAddr)
		},
	}
}
