package cartolib

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

type httpHandler struct {
	resolver Resolver
	logger   Logger
}

func (h httpHandler) handleResolve(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, chi.URLParam(r, "ip"))
}

func (h httpHandler) handleSelf(w http.ResponseWriter, r *http.Request) {
	addr := r.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}

	h.respond(w, r, addr)
}

func (h httpHandler) respond(w http.ResponseWriter, r *http.Request, addr string) {
	point, err := h.resolver.Resolve(r.Context(), addr)
	if err != nil {
		h.logger.LookupError(addr, h.resolver.Name(), err)
		abort(w, resolveStatusCode(err), err.Error())

		return
	}

	h.logger.LookupOK(addr, h.resolver.Name(), point)

	if err := json.NewEncoder(w).Encode(&point); err != nil {
		h.logger.LookupError(addr, h.resolver.Name(), err)
	}
}

func resolveStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAddress):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnresolvedAddress):
		return http.StatusNotFound
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func abort(w http.ResponseWriter, code int, message string) {
	msg, _ := json.Marshal(map[string]string{"error": message})
	http.Error(w, string(msg), code)
}

// NewHTTPHandler exposes a resolver over HTTP with the same API
// shape the remote backend consumes: GET /api/{ip} returns a
// GeoPoint as JSON, GET / resolves the caller's own address. A
// cartographer in serve mode is therefore a valid remote_url for
// another cartographer.
func NewHTTPHandler(resolver Resolver, logger Logger) http.Handler {
	handler := httpHandler{resolver: resolver, logger: logger}
	router := chi.NewRouter()

	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(middleware.SetHeader("Content-Type", "application/json"))

	router.Get("/", handler.handleSelf)
	router.Get("/api/{ip}", handler.handleResolve)

	return router
}
