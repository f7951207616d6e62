package server

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"log/slog"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/interfaces"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/types"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/errutil"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/logging"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
)

const maxEventSize = 1 << 20

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	eventSecret types.APIKey
}

type Option func(*config)

// WithEventSecret enables POST /events. Requests must carry "Authorization: ApiKey <secret>".
func WithEventSecret(secret types.APIKey) Option {
	return func(cfg *config) {
		cfg.eventSecret = secret
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Get("/queues", func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := uc.QueueSnapshot(r.Context())
		if err != nil {
			errutil.HandleError(r.Context(), "fail to read queues", err)
			safeWrite(w, http.StatusInternalServerError, []byte(err.Error()))
			return
		}

		raw, err := json.Marshal(snapshot)
		if err != nil {
			errutil.HandleError(r.Context(), "fail to encode queues", goerr.Wrap(err, "failed to marshal queue snapshot"))
			safeWrite(w, http.StatusInternalServerError, []byte(err.Error()))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		safeWrite(w, http.StatusOK, raw)
	})

	if cfg.eventSecret != "" {
		r.Post("/events", func(w http.ResponseWriter, r *http.Request) {
			if !authorized(r, cfg.eventSecret) {
				safeWrite(w, http.StatusUnauthorized, []byte("unauthorized"))
				return
			}

			payload, err := io.ReadAll(io.LimitReader(r.Body, maxEventSize))
			if err != nil {
				safeWrite(w, http.StatusBadRequest, []byte("failed to read body"))
				return
			}
			if _, err := model.ParseEvent(payload); err != nil {
				logging.From(r.Context()).Warn("Invalid event posted", slog.Any("error", err))
				safeWrite(w, http.StatusBadRequest, []byte("invalid event"))
				return
			}

			// a dropped client connection must not abort the queue update
			uc.OnEvent(DetachContext(r.Context()), payload)
			safeWrite(w, http.StatusAccepted, []byte(`{"status":"accepted"}`))
		})
	}

	return &Server{
		mux: r,
	}
}

func authorized(r *http.Request, secret types.APIKey) bool {
	key, ok := strings.CutPrefix(r.Header.Get("Authorization"), "ApiKey ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(secret.Reveal())) == 1
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
