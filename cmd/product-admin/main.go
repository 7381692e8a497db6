package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/product-admin/internal/client"
	"github.com/kahvecikaan/product-admin/internal/ui"
	"github.com/nicholasjackson/env"
)

// Environment variables
var (
	apiAddress = env.String("API_ADDRESS", false,
		"http://localhost:9090", "Base URL of the product API")
	logLevel = env.String("LOG_LEVEL", false,
		"info", "Log output level [debug, info, trace]")
	logFile = env.String("LOG_FILE", false,
		"", "File to write logs to; logging is disabled when empty")
	requestTimeout = env.Int("REQUEST_TIMEOUT", false,
		10, "Product API request timeout in seconds")
)

func main() {
	env.Parse()

	// The TUI owns the terminal, so logs go to a file or nowhere.
	logOutput := io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to open log file:", err)
			os.Exit(1)
		}
		defer f.Close()
		logOutput = f
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "product-admin",
		Level:  hclog.LevelFromString(*logLevel),
		Output: logOutput,
	})

	apiClient := client.New(
		*apiAddress,
		time.Duration(*requestTimeout)*time.Second,
		logger.Named("client"),
	)

	model := ui.New(apiClient, logger.Named("ui"))

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("Error running program", "error", err)
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		os.Exit(1)
	}
}
