package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rag-assistant/config"
	_ "rag-assistant/docs" // Swagger docs
	emailHTTP "rag-assistant/internal/email/delivery/http"
	"rag-assistant/internal/email/repository"
	gmailRepo "rag-assistant/internal/email/repository/gmail"
	emailUC "rag-assistant/internal/email/usecase"
	"rag-assistant/internal/httpserver"
	"rag-assistant/internal/orchestrator"
	promptHTTP "rag-assistant/internal/orchestrator/delivery/http"
	orchestratorUC "rag-assistant/internal/orchestrator/usecase"
	"rag-assistant/internal/retrieval"
	qdrantRepo "rag-assistant/internal/retrieval/repository/qdrant"
	retrievalUC "rag-assistant/internal/retrieval/usecase"
	"rag-assistant/internal/router"
	"rag-assistant/internal/summarizer"
	summarizerUC "rag-assistant/internal/summarizer/usecase"
	"rag-assistant/pkg/gmail"
	"rag-assistant/pkg/llmprovider"
	"rag-assistant/pkg/log"
	"rag-assistant/pkg/ollama"
	pkgQdrant "rag-assistant/pkg/qdrant"
	"rag-assistant/pkg/voyage"
)

// @title       RAG Assistant API
// @description Routes questions over personal notes and documents, answers with retrieved context, and reads recent mail.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting RAG assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Ollama URL: %s, Qdrant URL: %s", cfg.Ollama.URL, cfg.Qdrant.URL)

	// 3. Generation backend
	ollamaClient := ollama.New(ollama.Config{
		BaseURL: cfg.Ollama.URL,
		Timeout: cfg.Ollama.Timeout,
	})

	// 4. Router: remote classifier first when enabled, then the local model
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize classification providers: ", err)
		return
	}
	maxTotal, err := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	if err != nil {
		logger.Warnf(ctx, "Invalid llm.max_total_timeout %q, ignoring: %v", cfg.LLM.MaxTotalTimeout, err)
		maxTotal = 0
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		MaxTotalTimeout: maxTotal,
	}, logger)
	for _, p := range manager.Providers() {
		logger.Infof(ctx, "Router backend: %s (%s)", p.Name(), p.Model())
	}
	semanticRouter := router.New(manager, logger)

	// 5. Retrieval
	retrievalSvc, err := newRetrieval(cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize retrieval: ", err)
		return
	}

	// 6. Summarizer
	summarizerSvc := summarizerUC.New(retrievalSvc, ollamaClient, logger, summarizer.Options{
		BatchModel:       cfg.Models.Batch,
		FinalModel:       cfg.Models.Final,
		MaxCharsPerBatch: cfg.Summarizer.MaxCharsPerBatch,
	})

	// 7. Orchestrator
	mode := orchestrator.ParseMode(cfg.Orchestrator.Mode)
	orchestratorSvc := orchestratorUC.New(semanticRouter, retrievalSvc, summarizerSvc, ollamaClient, logger, orchestrator.Options{
		Mode:                mode,
		QAModel:             cfg.Models.Query,
		DefaultCollection:   retrieval.KeyCS,
		SpeculativeK:        cfg.Retrieval.SpeculativeK,
		PerCollectionK:      cfg.Retrieval.PerCollectionK,
		TotalCap:            cfg.Retrieval.TotalCap,
		MaxContextChars:     cfg.Prompt.MaxContextChars,
		SummarizeCollection: cfg.Summarizer.CollectionKey,
	})
	logger.Infof(ctx, "Orchestrator mode: %s", mode)

	// 8. Mail (optional)
	var mailRepo repository.MailRepository
	if cfg.Gmail.CredentialsPath != "" {
		gmailClient, gmErr := gmail.NewClientFromCredentialsFile(ctx, cfg.Gmail.CredentialsPath, cfg.Gmail.TokenPath, cfg.Gmail.UserID)
		if gmErr != nil {
			logger.Warnf(ctx, "Gmail not available (optional): %v", gmErr)
			logger.Warn(ctx, "→ Run `ragctl gmail-auth` to generate token.json")
		} else {
			mailRepo = gmailRepo.New(gmailClient, logger)
			logger.Info(ctx, "✅ Gmail initialized")
		}
	} else {
		logger.Info(ctx, "Gmail skipped: GMAIL_CREDENTIALS_PATH is not set")
	}
	emailHandler := emailHTTP.New(logger, emailUC.New(mailRepo, logger))

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		CORSOrigins:    cfg.HTTPServer.CORSOrigins,
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		PromptHandler:  promptHTTP.New(logger, orchestratorSvc),
		EmailHandler:   emailHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func newRetrieval(cfg *config.Config, logger log.Logger) (retrieval.UseCase, error) {
	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		return nil, fmt.Errorf("voyage: %w", err)
	}
	if cfg.Voyage.Model != "" {
		embedder = embedder.WithModel(cfg.Voyage.Model)
	}
	if cfg.Voyage.BaseURL != "" {
		embedder = embedder.WithBaseURL(cfg.Voyage.BaseURL)
	}

	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL)
	if cfg.Qdrant.APIKey != "" {
		qdrantClient = qdrantClient.WithAPIKey(cfg.Qdrant.APIKey)
	}

	index, err := qdrantRepo.New(qdrantClient, embedder, logger, qdrantRepo.Options{
		Collections: cfg.Qdrant.Collections,
		VectorSize:  cfg.Qdrant.VectorSize,
		Distance:    cfg.Qdrant.Distance,
		CacheSize:   cfg.Voyage.CacheSize,
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant repository: %w", err)
	}

	return retrievalUC.New(index, logger, retrievalUC.Options{
		Timeout:  cfg.Retrieval.Timeout,
		Strategy: retrieval.MergeConcatenate,
	}), nil
}
