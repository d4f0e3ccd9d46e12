package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontocerto/ponto-backend-go/internal/handler/http/response"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/sse"
)

type SSEHandler interface {
	Token(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type SSEHandlerImpl struct {
	hub        *sse.Hub
	jwtService jwt.Service
}

func NewSSEHandler(hub *sse.Hub, jwtService jwt.Service) SSEHandler {
	return &SSEHandlerImpl{hub: hub, jwtService: jwtService}
}

// Token implements SSEHandler. EventSource cannot set headers, so the client
// first trades its access token for a short-lived query-string token.
func (h *SSEHandlerImpl) Token(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r)
	if companyID == "" {
		response.Unauthorized(w, "Missing company scope")
		return
	}

	token, expiresIn, err := h.jwtService.GenerateSSEToken("", companyID)
	if err != nil {
		response.InternalServerError(w, "Failed to generate stream token")
		return
	}
	response.Success(w, map[string]interface{}{
		"token":      token,
		"expires_in": expiresIn,
	})
}

// Stats implements SSEHandler. Reports how many dashboards of the caller's
// company are connected, plus the process-wide total for capacity monitoring.
func (h *SSEHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r)
	if companyID == "" {
		response.Unauthorized(w, "Missing company scope")
		return
	}
	response.Success(w, map[string]interface{}{
		"subscribers":       h.hub.SubscriberCount(companyID),
		"total_subscribers": h.hub.TotalSubscribers(),
	})
}

// Stream implements SSEHandler.
func (h *SSEHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	tokenString := r.URL.Query().Get("token")
	_, companyID, err := h.jwtService.ValidateSSEToken(tokenString)
	if err != nil {
		response.Unauthorized(w, "Invalid stream token")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(companyID)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
