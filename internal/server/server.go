// Package server local command bridge between the GUI host and the key pair generator.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shirou/gopsutil/v3/cpu"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sourcecd/keypairgen/internal/compression"
	"github.com/sourcecd/keypairgen/internal/cryptandsign"
	"github.com/sourcecd/keypairgen/internal/customerrors"
	"github.com/sourcecd/keypairgen/internal/keypair"
	"github.com/sourcecd/keypairgen/internal/logging"
	"github.com/sourcecd/keypairgen/internal/models"
)

// GenerateKeypairCommand name of the only registered command.
const GenerateKeypairCommand = "generate_keypair"

// Time for in-flight requests to finish after shutdown signal.
const shutdownTimeout = 5 * time.Second

type commandHandlers struct {
	gen      KeyPairGenerator
	commands map[string]http.HandlerFunc
}

func newCommandHandlers(gen KeyPairGenerator) *commandHandlers {
	ch := &commandHandlers{gen: gen}
	ch.commands = map[string]http.HandlerFunc{
		GenerateKeypairCommand: ch.generateKeypair,
	}
	return ch
}

// Failure answer: structured for JSON callers, plain string otherwise.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, customerrors.ErrInvalidKeySize), errors.Is(err, customerrors.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, customerrors.ErrUnknownCommand):
		status = http.StatusNotFound
	}

	if !strings.Contains(r.Header.Get("Accept"), "application/json") {
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(models.GenerationError{
		Message: err.Error(),
		Details: customerrors.KindName(err),
	}); encErr != nil {
		logging.Log.Warn("write error answer", zap.Error(encErr))
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Log.Warn("write answer", zap.Error(err))
	}
}

func (ch *commandHandlers) invoke(w http.ResponseWriter, r *http.Request) {
	command := chi.URLParam(r, "command")
	h, ok := ch.commands[command]
	if !ok {
		writeError(w, r, customerrors.Newf(customerrors.ErrUnknownCommand, "unknown command: %s", command))
		return
	}
	h(w, r)
}

func (ch *commandHandlers) generateKeypair(w http.ResponseWriter, r *http.Request) {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		writeError(w, r, customerrors.Newf(customerrors.ErrBadRequest, "wrong content type: %s", ct))
		return
	}

	var req models.KeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, customerrors.Newf(customerrors.ErrBadRequest, "invalid request: %s", err))
		return
	}

	// generation is not interrupted, a gone caller just drops the result
	select {
	case res := <-ch.gen.Go(req.Bits):
		if res.Err != nil {
			writeError(w, r, res.Err)
			return
		}
		writeJSON(w, res.Pair)
	case <-r.Context().Done():
		logging.Log.Info("caller gone, result dropped", zap.Int("bits", req.Bits))
	}
}

func (ch *commandHandlers) allowedSizes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, ch.gen.AllowedSizes())
}

func ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func chiRouter(ch *commandHandlers, keyenc string) chi.Router {
	r := chi.NewRouter()

	r.Post("/invoke/{command}", logging.WriteLogging(compression.GzipCompDecomp(cryptandsign.SignCheck(ch.invoke, keyenc))))
	r.Get("/sizes", logging.WriteLogging(compression.GzipCompDecomp(ch.allowedSizes)))
	r.Get("/ping", ping)

	return r
}

// NewHandler bridge routes for embedding into another http server.
func NewHandler(gen KeyPairGenerator, keyenc string) http.Handler {
	return chiRouter(newCommandHandlers(gen), keyenc)
}

// Run serve the bridge until ctx is done.
func Run(ctx context.Context, config ConfigArgs) error {
	if err := logging.Setup(config.Loglevel); err != nil {
		return fmt.Errorf("logging setup: %w", err)
	}
	defer func() {
		_ = logging.Log.Sync()
	}()

	if cpus, err := cpu.Counts(true); err == nil {
		logging.Log.Info("host cpus", zap.Int("logical", cpus))
	}

	srv := &http.Server{
		Addr:              config.ServerAddr,
		Handler:           NewHandler(keypair.NewGenerator(), config.KeyEnc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logging.Log.Info("bridge listening", zap.String("addr", config.ServerAddr), zap.Bool("signed", config.KeyEnc != ""))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
