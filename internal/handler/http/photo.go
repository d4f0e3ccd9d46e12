package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pontocerto/ponto-backend-go/internal/domain/photo"
	"github.com/pontocerto/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontocerto/ponto-backend-go/internal/handler/http/response"
)

type PhotoHandler interface {
	SignedURL(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PhotoHandlerImpl struct {
	photoService photo.PhotoService
}

func NewPhotoHandler(photoService photo.PhotoService) PhotoHandler {
	return &PhotoHandlerImpl{photoService: photoService}
}

// SignedURL implements PhotoHandler.
func (p *PhotoHandlerImpl) SignedURL(w http.ResponseWriter, r *http.Request) {
	url, err := p.photoService.SignedURL(r.Context(), chi.URLParam(r, "id"), middleware.CompanyID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]string{"url": url})
}

// Delete implements PhotoHandler.
func (p *PhotoHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := p.photoService.Delete(r.Context(), chi.URLParam(r, "id"), middleware.CompanyID(r)); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Photo deleted", nil)
}
