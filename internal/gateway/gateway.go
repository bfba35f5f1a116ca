// Package gateway adapts the translate proxy handler to net/http so the
// function can be exercised locally without deploying. Each request is
// wrapped in a synthesized API Gateway event and the invocation response is
// copied back onto the HTTP response.
package gateway

import (
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/davetropeano/f2f/internal/handler"
)

// MakeHandler creates the HTTP handler for the local gateway endpoints.
func MakeHandler(h *handler.Handler, logger log.Logger) http.Handler {
	r := mux.NewRouter()
	r.Handle("/translate", &translateProxy{h: h, logger: logger}).Methods("POST")
	r.HandleFunc("/healthz", healthz).Methods("GET")
	return r
}

// translateProxy bridges one HTTP request to one handler invocation.
type translateProxy struct {
	h      *handler.Handler
	logger log.Logger
}

func (p *translateProxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	event := events.APIGatewayProxyRequest{
		HTTPMethod: r.Method,
		Path:       r.URL.Path,
		Body:       string(body),
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID: uuid.New().String(),
		},
	}

	resp, err := p.h.Handle(r.Context(), event)
	if err != nil {
		// Handle maps every outcome to a response; an error here is a bug.
		level.Error(p.logger).Log("msg", "handler returned error", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	io.WriteString(w, resp.Body)
}

// healthz reports process liveness only; it does not call the outbound
// service.
func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, `{"status":"ok"}`)
}
