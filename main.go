package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v9"

	"github.com/yalygin/ai-assistant-telegram-bot/pkg/database"
	"github.com/yalygin/ai-assistant-telegram-bot/pkg/logger"
	"github.com/yalygin/ai-assistant-telegram-bot/pkg/openrouter"
	"github.com/yalygin/ai-assistant-telegram-bot/pkg/pollinations"
	"github.com/yalygin/ai-assistant-telegram-bot/pkg/repository"
	"github.com/yalygin/ai-assistant-telegram-bot/pkg/services"
	"github.com/yalygin/ai-assistant-telegram-bot/pkg/telegram"
	"github.com/yalygin/ai-assistant-telegram-bot/pkg/telegram/handler"
	"github.com/yalygin/ai-assistant-telegram-bot/pkg/workers"
)

type Config struct {
	TelegramBotToken  string        `env:"TELEGRAM_BOT_TOKEN,required"`
	OpenRouterToken   string        `env:"OPENROUTER_API_KEY,required"`
	OpenRouterBaseURL string        `env:"OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	TextModel         string        `env:"TEXT_MODEL" envDefault:"nousresearch/deephermes-3-mistral-24b-preview:free"`
	VisionModel       string        `env:"VISION_MODEL" envDefault:"opengvlab/internvl3-14b:free"`
	ImageModel        string        `env:"IMAGE_MODEL" envDefault:"flux"`
	ImageBaseURL      string        `env:"IMAGE_BASE_URL"`
	BackendTimeout    time.Duration `env:"BACKEND_TIMEOUT" envDefault:"2m"`
	DatabasePath      string        `env:"DATABASE_PATH" envDefault:"queries.db"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	workerGroup, err := setupWorkers()
	if err != nil {
		return err
	}

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return workerGroup.Start(ctx)
}

func setupWorkers() (workers.Group, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	telegramClient, err := telegram.NewClient(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("creating telegram client: %w", err)
	}

	db, err := database.NewSQLite(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("creating db: %w", err)
	}

	completionClient, err := openrouter.NewClient(
		cfg.OpenRouterToken,
		cfg.OpenRouterBaseURL,
		cfg.TextModel,
		cfg.VisionModel,
		cfg.BackendTimeout,
	)
	if err != nil {
		return nil, fmt.Errorf("creating completion client: %w", err)
	}

	imageClient := pollinations.NewClient(cfg.ImageBaseURL, cfg.ImageModel, cfg.BackendTimeout)

	queryRepository := repository.NewQueryRepository(db)

	classifier := services.NewIntentClassifier(completionClient)
	answerService := services.NewAnswerService(completionClient)
	imageService := services.NewImageService(completionClient, imageClient)
	visionService := services.NewVisionService(completionClient)
	formatterService := services.NewFormatterService(completionClient)
	historyService := services.NewHistoryService(queryRepository)

	registry := telegram.NewRegistry(
		handler.NewStartCommand(telegramClient),
		handler.NewHelpCommand(telegramClient),
		handler.NewHistoryCommand(historyService, telegramClient),
		handler.NewRegenerateCallback(answerService, formatterService, queryRepository, telegramClient),
		handler.NewExplainCallback(answerService, formatterService, queryRepository, telegramClient),
		handler.NewDescribeImageMessage(visionService, formatterService, telegramClient),
		handler.NewAssistantMessage(classifier, answerService, imageService, formatterService, queryRepository, telegramClient),
	)

	var workerGroup workers.Group

	listener, err := workers.NewTelegramUpdateListener(telegramClient, registry)
	if err != nil {
		return nil, fmt.Errorf("creating update listener: %w", err)
	}
	workerGroup = append(workerGroup, listener)

	return workerGroup, nil
}
