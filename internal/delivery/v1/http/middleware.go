package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/doodle-alley/go-backend/internal/usecase"
	"github.com/doodle-alley/go-backend/pkg/e"
	"github.com/doodle-alley/go-backend/pkg/logger"
)

// RequireAdmin пропускает только запросы с действительным сессионным
// токеном администратора в заголовке Authorization (Bearer).
func RequireAdmin(authUC usecase.AuthUC, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("Authorization")
			if token == "" {
				WriteError(w, e.ErrTokenRequired)
				return
			}

			token = strings.TrimPrefix(token, "Bearer ")

			if err := authUC.VerifyToken(token); err != nil {
				log.Warnf("%d %s: %s %s", http.StatusUnauthorized, err.Error(), r.Method, r.URL.Path)
				WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Logging пишет строку на каждый обработанный запрос.
func Logging(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			log.Infof("%s %s %d %s", r.Method, r.URL.Path, sw.status, time.Since(start))
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
