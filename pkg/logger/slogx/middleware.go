package slogx

import (
	"log/slog"
	"net/http"
	"time"
)

// Middleware logs every request with its final status and duration
// through the global logger.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := Default()

		method := slog.String("method", r.Method)
		path := slog.String("path", r.URL.Path)
		logger.Debug(r.Context(), "start handling request", method, path)

		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		durAttr := slog.Duration("duration", time.Since(start))
		statusAttr := slog.Int("status", ww.status)

		if ww.status >= http.StatusInternalServerError {
			logger.Error(r.Context(), "finish with server error", method, path, statusAttr, durAttr)
		} else {
			logger.Info(r.Context(), "finish success", method, path, statusAttr, durAttr)
		}
	})
}

type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}
