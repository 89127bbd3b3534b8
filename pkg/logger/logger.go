// Package logger предоставляет общий интерфейс логирования поверх slog.
package logger

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger — единый интерфейс логирования приложения.
// Errorf принимает ошибку отдельным аргументом, чтобы она попадала
// в структурированное поле, а не склеивалась с сообщением.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
}

type SlogLogger struct {
	log *slog.Logger
}

// NewSlogLogger создает логгер с JSON-выводом в stdout.
// Уровень задается переменной окружения LOG_LEVEL (debug/info/warn/error).
func NewSlogLogger() *SlogLogger {
	level := slog.LevelInfo
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})

	return &SlogLogger{
		log: slog.New(handler),
	}
}

func (s *SlogLogger) Debugf(format string, args ...any) {
	s.log.Debug(fmt.Sprintf(format, args...))
}

func (s *SlogLogger) Infof(format string, args ...any) {
	s.log.Info(fmt.Sprintf(format, args...))
}

func (s *SlogLogger) Warnf(format string, args ...any) {
	s.log.Warn(fmt.Sprintf(format, args...))
}

func (s *SlogLogger) Errorf(err error, format string, args ...any) {
	s.log.Error(fmt.Sprintf(format, args...), slog.Any("error", err))
}
