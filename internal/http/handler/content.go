package handler

import (
	"errors"
	"memoarc/internal/core"
	"memoarc/internal/http/handler/middleware"
	"memoarc/internal/http/payload"
	"net/http"
)

func (h *BookmarkHandler) HandleCreateContent(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	userID := middleware.IdentityFromContext(r.Context())

	var payload payload.CreateContentRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.respondInvalid(w, "Invalid content data", err, requestId)
		h.logs.Errorw("failed to decode request payload",
			"error", err,
			"handler", CreateContent,
			"request_id", requestId)
		return
	}

	content, err := h.bookmarks.CreateContent(r.Context(), userID, payload.ToMessage())
	if err != nil {
		h.respond(w, Response{
			Message: "Error creating content",
			Error:   err.Error(),
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to create content",
			"error", err,
			"handler", CreateContent,
			"request_id", requestId)
		return
	}

	h.logs.Infow("content created",
		"contentId", content.ID,
		"handler", CreateContent,
		"request_id", requestId)

	h.respond(w, Response{Message: "Content created successfully"}, http.StatusOK, requestId)
}

func (h *BookmarkHandler) HandleViewContent(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	userID := middleware.IdentityFromContext(r.Context())

	content, err := h.bookmarks.ListContent(r.Context(), userID)
	if err != nil {
		h.respond(w, Response{
			Message: "Error fetching content",
			Error:   err.Error(),
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to list content",
			"error", err,
			"handler", ViewContent,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.ContentRecord{
		"content": content,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *BookmarkHandler) HandleDeleteContent(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	userID := middleware.IdentityFromContext(r.Context())

	var payload payload.DeleteContentRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.respondInvalid(w, "Invalid content data", err, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", DeleteContent,
			"request_id", requestId)
		return
	}

	if err := h.bookmarks.DeleteContent(r.Context(), userID, payload.ContentID); err != nil {
		h.respond(w, Response{
			Message: "Error deleting content",
			Error:   err.Error(),
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to delete content",
			"error", err,
			"handler", DeleteContent,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "Content deleted successfully"}, http.StatusOK, requestId)
}

func (h *BookmarkHandler) HandleShare(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	userID := middleware.IdentityFromContext(r.Context())

	var payload payload.ShareRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.respondInvalid(w, "Invalid share request", err, requestId)
		h.logs.Errorw("failed to decode request payload",
			"error", err,
			"handler", ShareContent,
			"request_id", requestId)
		return
	}

	if !payload.Share {
		if err := h.bookmarks.Unshare(r.Context(), userID); err != nil {
			h.respond(w, Response{
				Message: "Error removing share link",
				Error:   err.Error(),
			}, http.StatusInternalServerError, requestId)
			h.logs.Errorw("failed to remove share link",
				"error", err,
				"handler", ShareContent,
				"request_id", requestId)
			return
		}
		h.respond(w, Response{Message: "Removed share link"}, http.StatusOK, requestId)
		return
	}

	result, err := h.bookmarks.Share(r.Context(), userID)
	if err != nil {
		h.respond(w, Response{
			Message: "Error creating share link",
			Error:   err.Error(),
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to create share link",
			"error", err,
			"handler", ShareContent,
			"request_id", requestId)
		return
	}

	if !result.Created {
		h.respond(w, map[string]string{"hash": result.Hash}, http.StatusOK, requestId)
		return
	}
	h.respond(w, Response{Message: "share/" + result.Hash}, http.StatusOK, requestId)
}

func (h *BookmarkHandler) HandleShareLink(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	hash := r.PathValue("shareLink")

	collection, err := h.bookmarks.SharedContent(r.Context(), hash)
	if err != nil {
		if errors.Is(err, core.ErrShareLinkNotFound) {
			h.respond(w, Response{Message: "Link not found"}, http.StatusNotFound, requestId)
			return
		}
		h.respond(w, Response{
			Message: "Error fetching shared content",
			Error:   err.Error(),
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to fetch shared content",
			"error", err,
			"handler", ShareLink,
			"request_id", requestId)
		return
	}

	h.respond(w, collection, http.StatusOK, requestId)
}
