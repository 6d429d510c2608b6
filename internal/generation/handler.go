package generation

import (
	"encoding/json"
	"net/http"

	"github.com/novel2image/proxy/internal/response"
)

// Handler holds the HTTP handler for image generation.
type Handler struct {
	svc *Service
}

// NewHandler creates a new generation Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Generate godoc
//
//	@Summary		Generate image
//	@Description	Forwards a text-to-image request to Doubao Seedream. The provider's JSON answer is returned verbatim; provider errors keep their status and body.
//	@Tags			proxy
//	@Accept			json
//	@Produce		json
//	@Param			request	body		Request	true	"Generation request"
//	@Success		200		{object}	object
//	@Failure		400		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/proxy/doubao/generate [post]
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	res, err := h.svc.Generate(r.Context(), req)
	if err != nil {
		response.Fail(w, err)
		return
	}

	response.Raw(w, res.StatusCode, res.ContentType, res.Body)
}
