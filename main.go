package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ia-local/revendications/ai"
	"github.com/ia-local/revendications/cliparse"
	"github.com/ia-local/revendications/middleware"
	"github.com/ia-local/revendications/router"
	"github.com/ia-local/revendications/store"
)

func main() {
	var err error

	// Load a local .env if present; absence is fine
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded environment from .env")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.GroqAPIKey == "" {
		slog.Warn("GROQ_API_KEY is not set; text-generation calls will fail")
	}
	if cfg.GeminiAPIKey == "" {
		slog.Warn("GEMINI_API_KEY is not set; image generation is disabled")
	}

	// Load the corpus (fails soft: empty corpus on a missing data dir)
	s := store.Open(cfg.DataDir, cfg.Ranking)

	// Provider clients; a nil Gemini client disables the image branch
	groq := ai.NewGroqClient(cfg.GroqAPIKey, cfg.GroqModel)
	gemini := ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	orch := ai.NewOrchestrator(groq, gemini)

	// Create router
	mux := router.NewRouter(s, orch, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "data_dir", cfg.DataDir, "ranking", cfg.Ranking, "groq_model", cfg.GroqModel)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
