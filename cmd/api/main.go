package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studybuddy/config"
	_ "studybuddy/docs" // Swagger docs
	"studybuddy/internal/chat/repository/inmemory"
	chatUC "studybuddy/internal/chat/usecase"
	"studybuddy/internal/httpserver"
	"studybuddy/internal/intent"
	"studybuddy/internal/language"
	"studybuddy/internal/retrieval"
	"studybuddy/pkg/cache"
	"studybuddy/pkg/datemath"
	"studybuddy/pkg/gcalendar"
	"studybuddy/pkg/llmprovider"
	"studybuddy/pkg/log"
	"studybuddy/pkg/qdrant"
	"studybuddy/pkg/ticketmaster"
	"studybuddy/pkg/translate"
	"studybuddy/pkg/voyage"
)

// @title       StudyBuddy API
// @description Multilingual conversational assistant for international students in Turkey.
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

	logger.Info(ctx, "Starting StudyBuddy...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Translation cache + language bridge
	cacheTTL, err := time.ParseDuration(cfg.Chat.CacheTTL)
	if err != nil {
		logger.Warnf(ctx, "Invalid cache TTL %q, using default: %v", cfg.Chat.CacheTTL, err)
		cacheTTL = 0
	}
	translationCache := cache.New(cacheTTL)

	translator := translate.New(translate.Config{
		Endpoint:       cfg.Translate.APIURL,
		RequestsPerMin: cfg.Translate.RequestsPerMin,
	})
	bridge := language.NewBridge(logger, translator, translationCache)

	// 4. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	llm := llmprovider.NewManager(providers, llmManagerConfig(cfg.LLM), logger)
	logger.Infof(ctx, "LLM providers initialized: %d", len(providers))

	// 5. Intent router
	intentRouter := intent.NewRouter(logger, llm)

	// 6. Retrieval over Voyage embeddings + Qdrant
	var retrievalRouter *retrieval.Router
	if cfg.Voyage.APIKey != "" && cfg.Qdrant.URL != "" {
		embedder, vErr := voyage.New(cfg.Voyage.APIKey, cfg.Voyage.Model)
		if vErr != nil {
			logger.Error(ctx, "Failed to initialize Voyage client: ", vErr)
			return
		}
		qdrantClient := qdrant.NewClient(cfg.Qdrant.URL, "")
		store := retrieval.NewVectorStore(embedder, qdrantClient, cfg.Qdrant.CollectionName)
		retrievalRouter = retrieval.NewRouter(logger, store)
		logger.Info(ctx, "Document retrieval initialized")
	} else {
		logger.Warn(ctx, "VOYAGE_API_KEY or QDRANT_URL missing, document answers will be empty")
		retrievalRouter = retrieval.NewRouter(logger, noopSearcher{})
	}

	// 7. Events: Ticketmaster plus optional campus calendar
	events, err := ticketmaster.New(ticketmaster.Config{APIKey: cfg.Ticketmaster.APIKey})
	if err != nil {
		logger.Warnf(ctx, "Ticketmaster not available (optional): %v", err)
		events = nil
	}

	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	dateMathParser := datemath.NewParser(cfg.Chat.Timezone)

	// 8. Chat domain
	repo := inmemory.New()
	uc := chatUC.New(
		logger,
		repo,
		bridge,
		intentRouter,
		retrievalRouter,
		llm,
		events,
		calendarClient,
		dateMathParser,
		cfg.Chat.City,
		cfg.GoogleCalendar.CalendarID,
	)

	// 9. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatUseCase: uc,
		Cache:       translationCache,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// noopSearcher keeps the retrieval router functional when no vector backend
// is configured; every search finds nothing.
type noopSearcher struct{}

func (noopSearcher) SimilaritySearch(ctx context.Context, query string, k int) ([]retrieval.Document, error) {
	return nil, nil
}

// llmManagerConfig converts the duration strings of the file config into the
// typed manager config.
func llmManagerConfig(cfg config.LLMConfig) *llmprovider.Config {
	out := &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
	}
	if d, err := time.ParseDuration(cfg.RetryDelay); err == nil {
		out.RetryDelay = d
	}
	if d, err := time.ParseDuration(cfg.MaxTotalTimeout); err == nil {
		out.MaxTotalTimeout = d
	}
	return out
}
