// Package logging subsystem for keypair bridge server and keygen cli.
package logging

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Log base zap logger, no-op until Setup called.
var Log *zap.Logger = zap.NewNop()

type (
	// Collected HTTP status code and answer size.
	responseData struct {
		status int
		size   int
	}

	// ResponseWriter wrapper that records responseData.
	loggingResponseWriter struct {
		http.ResponseWriter
		responseData *responseData
	}
)

func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	if r.responseData.status == 0 {
		r.responseData.status = http.StatusOK
	}
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

// Setup init zap logging with given level (debug, info, warn, error).
func Setup(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	_ = Log.Sync()
	Log = zl
	return nil
}

// WriteLogging wrap HandlerFunc and write one log line per request.
func WriteLogging(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rd := &responseData{}
		lw := &loggingResponseWriter{
			ResponseWriter: w,
			responseData:   rd,
		}

		h(lw, r)

		Log.Info(
			"request",
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)),
			zap.Int("status", rd.status),
			zap.Int("content-length", rd.size),
			zap.String("accept-encoding", r.Header.Get("Accept-Encoding")),
		)
	}
}
