package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/nvoss/meetnotes/internal/api/handlers"
	"github.com/nvoss/meetnotes/internal/api/middleware"
	"github.com/nvoss/meetnotes/internal/api/routes"
	"github.com/nvoss/meetnotes/internal/audio"
	"github.com/nvoss/meetnotes/internal/config"
	"github.com/nvoss/meetnotes/internal/logger"
	"github.com/nvoss/meetnotes/internal/pipeline"
	"github.com/nvoss/meetnotes/internal/providers/llm"
	"github.com/nvoss/meetnotes/internal/providers/stt"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	l := logger.New(cfg.LogLevel)
	l.WithField("api_key", cfg.KeyPrefix()).Info("starting meetnotes")

	if err := audio.CheckFFmpeg(); err != nil {
		l.WithError(err).Fatal("ffmpeg check failed")
	}

	ctx := context.Background()

	sttProv, err := newSTT(ctx, cfg)
	if err != nil {
		l.WithError(err).Fatal("stt provider init failed")
	}
	defer sttProv.Close()

	llmProv, err := newLLM(ctx, cfg)
	if err != nil {
		l.WithError(err).Fatal("llm provider init failed")
	}
	defer llmProv.Close()

	pipe := pipeline.New(cfg, sttProv, llmProv, l)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	routes.RegisterRoutes(r, routes.Deps{
		Meetings: handlers.NewMeetingHandler(cfg, pipe, l),
		Exports:  handlers.NewExportHandler(),
	})

	l.WithField("port", cfg.Port).Info("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		l.WithError(err).Fatal("server terminated")
	}
}

func newSTT(ctx context.Context, cfg *config.Config) (stt.Provider, error) {
	switch cfg.STTProvider {
	case "google":
		return stt.NewGoogleSpeech(ctx)
	case "whisper":
		return stt.NewWhisper(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.STTModel, cfg.TranscribeTimeout), nil
	default:
		return nil, fmt.Errorf("unknown stt provider %q", cfg.STTProvider)
	}
}

func newLLM(ctx context.Context, cfg *config.Config) (llm.Provider, error) {
	switch cfg.LLMProvider {
	case "vertex":
		return llm.NewVertexGemini(ctx, cfg.VertexProjectID, cfg.VertexLocation, cfg.VertexModel, cfg.MaxOutputTokens)
	case "openai":
		return llm.NewOpenAIChat(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.LLMModel, cfg.MaxOutputTokens, cfg.AnalyzeTimeout), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLMProvider)
	}
}
