package summarize

import (
	"encoding/json"
	"net/http"

	"github.com/novel2image/proxy/internal/response"
)

// Handler holds the HTTP handler for novel summarization.
type Handler struct {
	svc *Service
}

// NewHandler creates a new summarize Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Summarize godoc
//
//	@Summary		Summarize novel text
//	@Description	Wraps the novel text and user request into a two-message chat and forwards it to DeepSeek (non-streaming). The provider's JSON answer is returned verbatim.
//	@Tags			proxy
//	@Accept			json
//	@Produce		json
//	@Param			request	body		Request	true	"Summarization request"
//	@Success		200		{object}	object
//	@Failure		400		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/proxy/deepseek/summarize [post]
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	res, err := h.svc.Summarize(r.Context(), req)
	if err != nil {
		response.Fail(w, err)
		return
	}

	response.Raw(w, res.StatusCode, res.ContentType, res.Body)
}
