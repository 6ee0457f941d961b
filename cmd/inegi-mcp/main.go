package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/datamx/inegi-mcp-server/internal/app"
	"github.com/datamx/inegi-mcp-server/internal/config"
	"github.com/datamx/inegi-mcp-server/internal/logging"
	"github.com/datamx/inegi-mcp-server/internal/mcp"
	"github.com/datamx/inegi-mcp-server/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "inegi-mcp",
		Short:   "MCP server exposing INEGI indicator and DENUE directory tools",
		Version: version.Get().Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			_ = godotenv.Load()
		},
	}

	var httpAddr string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP JSON-RPC over HTTP",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, cleanup, err := logging.New("mcp-http")
			if err != nil {
				return err
			}
			defer cleanup()

			server, err := app.NewMCPServer(cfg)
			if err != nil {
				return err
			}
			return mcp.RunHTTP(server, httpAddr, log)
		},
	}
	serve.Flags().StringVar(&httpAddr, "http", ":3333", "MCP HTTP listen address (e.g., :3333)")

	stdio := &cobra.Command{
		Use:   "stdio",
		Short: "Serve MCP JSON-RPC over stdin/stdout",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, cleanup, err := logging.New("mcp-stdio")
			if err != nil {
				return err
			}
			defer cleanup()

			server, err := app.NewMCPServer(cfg)
			if err != nil {
				return err
			}
			return mcp.RunStdio(server, os.Stdin, os.Stdout, log)
		},
	}

	root.AddCommand(serve, stdio)
	return root
}
