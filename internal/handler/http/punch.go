package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
	"github.com/pontocerto/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontocerto/ponto-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	Clock(w http.ResponseWriter, r *http.Request)
	CreateManual(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PunchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &PunchHandlerImpl{punchService: punchService}
}

// Clock implements PunchHandler. The kiosk posts either plain JSON or a
// multipart form carrying the capture photo.
func (p *PunchHandlerImpl) Clock(w http.ResponseWriter, r *http.Request) {
	var req punch.ClockRequest

	contentType := r.Header.Get("Content-Type")
	if len(contentType) >= 19 && contentType[:19] == "multipart/form-data" {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			response.BadRequest(w, "Failed to parse form data", nil)
			return
		}
		dataJSON := r.FormValue("data")
		if dataJSON == "" {
			response.BadRequest(w, "Field 'data' is required", nil)
			return
		}
		if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
		file, fileHeader, err := r.FormFile("foto")
		if err != nil && err != http.ErrMissingFile {
			response.BadRequest(w, "Invalid file upload", nil)
			return
		}
		req.File = file
		req.FileHeader = fileHeader
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := p.punchService.Clock(r.Context(), req)
	if err != nil {
		slog.Error("Failed to register punch", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Punch registered", created)
}

// CreateManual implements PunchHandler.
func (p *PunchHandlerImpl) CreateManual(w http.ResponseWriter, r *http.Request) {
	var req punch.CreateManualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CompanyID = middleware.CompanyID(r)

	created, err := p.punchService.CreateManual(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create manual punch", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Punch created", created)
}

// GetByID implements PunchHandler.
func (p *PunchHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := p.punchService.GetByID(r.Context(), chi.URLParam(r, "id"), middleware.CompanyID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// List implements PunchHandler.
func (p *PunchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r)
	query := r.URL.Query()

	var employeeID *string
	if v := query.Get("colaborador_id"); v != "" {
		employeeID = &v
	}
	limit, _ := strconv.Atoi(query.Get("limit"))

	listed, err := p.punchService.List(r.Context(), companyID, employeeID,
		query.Get("de"), query.Get("ate"), query.Get("cursor"), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, listed)
}

// Delete implements PunchHandler.
func (p *PunchHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := p.punchService.Delete(r.Context(), chi.URLParam(r, "id"), middleware.CompanyID(r)); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Punch deleted", nil)
}
