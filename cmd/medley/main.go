package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/drake/medley/internal/auth"
	"github.com/drake/medley/internal/catalog"
	"github.com/drake/medley/internal/config"
	"github.com/drake/medley/internal/log"
	"github.com/drake/medley/internal/presign"
	"github.com/drake/medley/internal/ragstack"
	"github.com/drake/medley/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("medley %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting medley", "version", Version)

	if !cfg.IsConfigured() {
		return runSetupFlow(cfg)
	}

	client, err := ragstack.NewClient(cfg.API.GraphQLURL, cfg.API.Key, logger)
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	tokens := auth.NewStaticTokenSource(cfg.API.Token)
	signer, err := presign.NewClient(cfg.API.BaseURL, cfg.Presign.Bucket, tokens, logger)
	if err != nil {
		return fmt.Errorf("failed to create presign client: %w", err)
	}

	mediaSvc := catalog.NewService(client, signer, cfg.API.PageSize, logger)
	searchSvc := catalog.NewSearchService(mediaSvc.Cache(), logger)

	model := tui.NewModel(mediaSvc, searchSvc)

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow handles the initial setup when not configured
func runSetupFlow(cfg *config.Config) error {
	fmt.Println()
	fmt.Println("Welcome to Medley!")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	graphqlURL, err := promptLine(reader, "GraphQL endpoint URL: ")
	if err != nil {
		return err
	}
	if graphqlURL == "" {
		return fmt.Errorf("endpoint URL cannot be empty")
	}

	apiKey, err := promptSecret("API key: ")
	if err != nil {
		return err
	}
	if apiKey == "" {
		return fmt.Errorf("API key cannot be empty")
	}

	baseURL, err := promptLine(reader, "Backend proxy base URL (for downloads): ")
	if err != nil {
		return err
	}

	token, err := promptSecret("Bearer token (optional, enter to skip): ")
	if err != nil {
		return err
	}

	cfg.API.GraphQLURL = graphqlURL
	cfg.API.Key = apiKey
	cfg.API.BaseURL = baseURL
	cfg.API.Token = token

	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run medley again to start the application.")

	return nil
}

// promptLine reads one trimmed line of input
func promptLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(input), nil
}

// promptSecret reads input without echoing it to the terminal
func promptSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	secret, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(string(secret)), nil
}
