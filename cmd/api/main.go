package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chat-with-search/config"
	"chat-with-search/internal/agent"
	"chat-with-search/internal/agent/tools"
	chatHTTP "chat-with-search/internal/chat/delivery/http"
	chatUC "chat-with-search/internal/chat/usecase"
	"chat-with-search/internal/httpserver"
	"chat-with-search/internal/middleware"
	"chat-with-search/internal/session"
	"chat-with-search/pkg/llmprovider"
	"chat-with-search/pkg/log"
	"chat-with-search/pkg/serpapi"
)

// @title       Chat With Search API
// @description Conversational API that answers with live web data when the question needs it.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Chat With Search...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Search provider client
	serpClient, err := serpapi.New(serpapi.Config{
		APIKey:  cfg.SerpAPI.APIKey,
		BaseURL: cfg.SerpAPI.BaseURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize SerpAPI client: ", err)
		os.Exit(1)
	}

	// 4. LLM providers with fallback
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		os.Exit(1)
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (model=%s)", p.Name(), p.Model())
	}

	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDurationOr(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDurationOr(cfg.LLM.MaxTotalTimeout, time.Minute),
	}, logger)

	// 5. Agent tools
	registry := agent.NewToolRegistry()
	registry.Register(tools.NewSearchInternetTool(serpClient))

	// 6. Chat domain
	sessions := session.NewStore()
	uc := chatUC.New(logger, llmManager, registry, sessions, chatUC.Options{
		MaxAgentSteps: cfg.Chat.MaxAgentSteps,
		Temperature:   cfg.Chat.Temperature,
		MaxTokens:     cfg.Chat.MaxTokens,
	})
	chatHandler := chatHTTP.New(logger, uc)

	// 7. HTTP server
	mw := middleware.New(logger, cfg.Chat.RateLimitPerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		ChatHandler: chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDurationOr(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
