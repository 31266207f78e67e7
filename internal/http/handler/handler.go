package handler

import (
	"encoding/json"
	"memoarc/internal/http/handler/middleware"
	"net/http"

	"go.uber.org/zap"
)

var (
	Health        = "GET /healthz"
	Signup        = "POST /signup"
	Signin        = "POST /signin"
	Me            = "GET /me"
	CreateContent = "POST /content/create"
	ViewContent   = "GET /content/view"
	DeleteContent = "DELETE /content/delete"
	ShareContent  = "POST /content/share"
	ShareLink     = "GET /content/shareLink/{shareLink}"
	Preview       = "GET /preview"
	Metrics       = "GET /metrics"
)

type BookmarkHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	bookmarks        BookmarkService
	previews         PreviewService
	version          string
}

func NewBookmarkHandler(
	logger *zap.SugaredLogger,
	requestValidator RequestValidator,
	bookmarkService BookmarkService,
	previewService PreviewService,
	version string,
) *BookmarkHandler {
	return &BookmarkHandler{
		logs:             logger,
		requestValidator: requestValidator,
		bookmarks:        bookmarkService,
		previews:         previewService,
		version:          version,
	}
}

func (h *BookmarkHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.respond(w, HealthResponse{OK: true, Version: h.version}, http.StatusOK, middleware.RequestIDFromContext(r.Context()))
}

func (h *BookmarkHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
