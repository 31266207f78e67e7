package handler

import (
	"errors"
	"memoarc/internal/http/handler/middleware"
	"memoarc/internal/preview"
	"net/http"
)

func (h *BookmarkHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	target := r.URL.Query().Get("url")

	record, err := h.previews.Preview(r.Context(), target)
	if err != nil {
		switch {
		case errors.Is(err, preview.ErrInvalidURL):
			h.respond(w, Response{Message: "Invalid URL"}, http.StatusBadRequest, requestId)
		case errors.Is(err, preview.ErrUnsupportedProtocol):
			h.respond(w, Response{Message: "Unsupported protocol"}, http.StatusBadRequest, requestId)
		default:
			h.respond(w, Response{
				Message: "Failed to fetch preview",
				Error:   err.Error(),
			}, http.StatusInternalServerError, requestId)
			h.logs.Errorw("failed to build preview",
				"error", err,
				"url", target,
				"handler", Preview,
				"request_id", requestId)
		}
		return
	}

	h.respond(w, record, http.StatusOK, requestId)
}
