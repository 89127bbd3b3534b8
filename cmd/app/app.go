package main

import (
	"os"

	"github.com/doodle-alley/go-backend/internal/app"
	config "github.com/doodle-alley/go-backend/internal/cfg"
	"github.com/doodle-alley/go-backend/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// .env опционален: в контейнере переменные приходят из окружения.
	_ = godotenv.Load()

	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	if err := app.Run(cfg, log); err != nil {
		os.Exit(1)
	}
}
