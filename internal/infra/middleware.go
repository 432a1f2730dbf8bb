package infra

import (
	"context"
	"net/http"

	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/chat-tree-service/internal/config"
)

// HeaderUserUUID carries the caller identity resolved by the gateway.
const HeaderUserUUID = "X-User-Uuid"

func AuthInterceptorHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userUUID := r.Header.Get(HeaderUserUUID)
		if userUUID == "" {
			http.Error(w, "failed to find uuid", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, userUUID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func LoggerHTTP(next http.Handler, logger logger_lib.LoggerInterface) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), config.KeyLogger, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func MetricsHTTP(next http.Handler, metrics pkg.MetricInterface) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), config.KeyMetrics, metrics)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
