// apps/go-solver/internal/httpserver/server.go
//
// HTTP server wiring for the solver.
// Responsibilities:
//   - Router + middleware (JSON, CORS, request IDs, panic recovery, timeouts, access log).
//   - Public endpoints: "/health", "/debug/words", "/stats".
//   - Solver endpoints: POST /solver/new, POST /solver/feedback, GET /solver/state.
//   - Recording finished sessions to the history store (best effort).
//
// Notes:
//   - Every session access goes through store.Update/View, so each session
//     stays strictly turn-based even with concurrent clients.
//   - Finished sessions stay in the store until they expire, so late feedback
//     gets 409 rather than 404. Janitor sweeps expired sessions.
//   - CORS is origin-aware and credentials-enabled for the web client.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/history"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// listLimit is the candidate count at or below which responses list every
// remaining word.
const listLimit = 10

// History is the subset of the history store the server needs.
type History interface {
	Record(ctx context.Context, r history.Result) error
	Summary(ctx context.Context) (history.Summary, error)
}

// Options configures a Server.
type Options struct {
	Secret   []byte        // token signing key
	TokenTTL time.Duration // token lifetime
	History  History       // optional; nil disables /stats and recording

	// ClientOrigin is the browser origin allowed by CORS
	// (default http://localhost:5173).
	ClientOrigin string

	// NewSession starts a solve. daily asks for the opener of the day.
	NewSession func(daily bool) *solver.Session
}

// Server bundles router, live session store and history.
type Server struct {
	r     *chi.Mux
	store store.Store
	opts  Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, opts Options) *Server {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	s := &Server{r: chi.NewRouter(), store: st, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                       // one log line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"dictionary": words.Stats(), "sessions": s.store.Len()})
	})
	s.r.Get("/stats", s.handleStats)

	s.r.Route("/solver", func(r chi.Router) {
		r.Post("/new", s.handleNew)
		r.Post("/feedback", s.handleFeedback)
		r.Get("/state", s.handleState)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", r.URL.Path)
	})
	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Janitor drops expired sessions every interval until ctx is done.
func (s *Server) Janitor(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.store.Sweep(ctx); n > 0 {
				log.Debug().Int("evicted", n).Int("live", s.store.Len()).Msg("expired sessions swept")
			}
		}
	}
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors allows the given origin with credentials and answers preflight
// requests directly.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog logs method, path, status and duration with zerolog.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			log.Info().
				Str("reqId", chimw.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("took", time.Since(start)).
				Msg("request")
		}()
		next.ServeHTTP(ww, r)
	})
}

// ------------------------------ SOLVER -------------------------------------

// newReq is the optional payload for POST /solver/new.
type newReq struct {
	Daily bool `json:"daily"`
}

// feedbackReq is the payload for POST /solver/feedback.
// The token may also be sent as a bearer token.
type feedbackReq struct {
	Token string `json:"token"`
	Code  string `json:"code"`
}

// sessionRes describes a session after every call.
type sessionRes struct {
	Token      string       `json:"token,omitempty"`
	Guess      string       `json:"guess,omitempty"`
	Remaining  int          `json:"remaining"`
	Candidates []string     `json:"candidates,omitempty"` // only when remaining <= 10
	State      solver.State `json:"state"`
	Rounds     int          `json:"rounds"`
}

func describe(sess *solver.Session) sessionRes {
	res := sessionRes{
		Guess:     sess.Guess(),
		Remaining: sess.Remaining(),
		State:     sess.State(),
		Rounds:    len(sess.Rounds()),
	}
	if res.Remaining <= listLimit {
		res.Candidates = sess.Candidates()
	}
	return res
}

// handleNew starts a session and hands out its token.
func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	var req newReq
	// an empty body means defaults
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}

	sess := s.opts.NewSession(req.Daily)
	res := describe(sess)

	if sess.State().Terminal() {
		// empty dictionary: nothing to play, nothing to keep
		_ = json.NewEncoder(w).Encode(res)
		return
	}
	id, err := s.store.Create(r.Context(), sess)
	if err != nil {
		log.Error().Err(err).Msg("create session")
		writeError(w, http.StatusInternalServerError, "save_failed", "")
		return
	}
	tok, err := s.signToken(id)
	if err != nil {
		log.Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed", "")
		return
	}
	res.Token = tok
	log.Debug().Str("session", id).Str("opener", sess.Opener()).Msg("session started")
	_ = json.NewEncoder(w).Encode(res)
}

// handleFeedback applies one feedback code to a session.
// Malformed codes are reported with 400 and leave the session unchanged.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	if req.Token == "" {
		req.Token = bearerToken(r)
	}
	id, err := s.parseToken(req.Token)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid_token", "")
		return
	}

	var res sessionRes
	var finished *history.Result
	err = s.store.Update(r.Context(), id, func(sess *solver.Session) error {
		state, err := sess.Apply(req.Code)
		if err != nil {
			return err
		}
		res = describe(sess)
		if state.Terminal() {
			finished = &history.Result{
				ID:        id,
				Opener:    sess.Opener(),
				Outcome:   string(state),
				Rounds:    len(sess.Rounds()),
				Remaining: sess.Remaining(),
			}
		}
		return nil
	})
	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "")
		return
	case errors.Is(err, solver.ErrSessionOver):
		writeError(w, http.StatusConflict, "session_over", "")
		return
	case errors.Is(err, solver.ErrMalformedFeedback), errors.Is(err, solver.ErrFeedbackLength):
		writeError(w, http.StatusBadRequest, "malformed_feedback", err.Error())
		return
	default:
		log.Error().Err(err).Str("session", id).Msg("apply feedback")
		writeError(w, http.StatusInternalServerError, "apply_failed", "")
		return
	}

	if finished != nil {
		s.finish(r.Context(), *finished)
	}
	_ = json.NewEncoder(w).Encode(res)
}

// handleState reports a session without changing it.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	id, err := s.parseToken(bearerToken(r))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid_token", "")
		return
	}
	var res sessionRes
	err = s.store.View(r.Context(), id, func(sess *solver.Session) error {
		res = describe(sess)
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "")
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// finish records a terminal session (best effort). The session itself stays
// in the store until it expires.
func (s *Server) finish(ctx context.Context, res history.Result) {
	if s.opts.History != nil {
		if err := s.opts.History.Record(ctx, res); err != nil {
			log.Warn().Err(err).Str("session", res.ID).Msg("record history")
		}
	}
	log.Info().Str("session", res.ID).Str("outcome", res.Outcome).Int("rounds", res.Rounds).Msg("session finished")
}

// handleStats returns the history summary.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.opts.History == nil {
		writeError(w, http.StatusNotFound, "history_disabled", "")
		return
	}
	sum, err := s.opts.History.Summary(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("history summary")
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return
	}
	_ = json.NewEncoder(w).Encode(sum)
}

// ------------------------------- small util --------------------------------

// writeError writes {"error": code, "detail": detail} with status.
func writeError(w http.ResponseWriter, status int, code, detail string) {
	w.WriteHeader(status)
	body := map[string]string{"error": code}
	if detail != "" {
		body["detail"] = detail
	}
	_ = json.NewEncoder(w).Encode(body)
}
