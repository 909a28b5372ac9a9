package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"NewsLens/internal/config"
	"NewsLens/internal/infrastructure/gemini"
	"NewsLens/internal/infrastructure/newsapi"
	"NewsLens/internal/logging"
	"NewsLens/internal/server"
	"NewsLens/internal/summarize"
	"NewsLens/internal/usecase"
	"NewsLens/internal/verification"
)

// Application wires configs to the pipeline and the HTTP boundary.
type Application struct {
	cfg    config.Config
	srv    *http.Server
	logger *slog.Logger
}

// New builds a runnable application instance. Every stage is constructed
// explicitly here; nothing hangs off package-level singletons.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	source := newsapi.NewClient(cfg.NewsAPI, baseLogger.With("component", "retrieval"))
	verifier := verification.NewVerifier(cfg.Features.RealVerification, baseLogger.With("component", "verification"))
	llm := gemini.NewClient(cfg.Gemini, baseLogger.With("component", "llm"))
	engine := summarize.NewEngine(llm, cfg.Features.RealSummarization, cfg.Features.EnhancedDebate,
		baseLogger.With("component", "summarization"))

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:     source,
		Verifier:   verifier,
		Summarizer: engine,
		Logger:     baseLogger.With("component", "pipeline"),
	})

	httpBoundary := server.New(pipeline, cfg.Server.Environment, baseLogger.With("component", "server"))

	return &Application{
		cfg: cfg,
		srv: &http.Server{
			Addr:              ":" + cfg.Server.Port,
			Handler:           httpBoundary.Router(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: baseLogger,
	}
}

// Run serves HTTP until the context is cancelled, then shuts down
// gracefully.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("listening", "addr", a.srv.Addr)
		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
