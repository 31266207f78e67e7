package handler

import (
	"errors"
	"memoarc/internal/core"
	"memoarc/internal/http/handler/middleware"
	"memoarc/internal/http/payload"
	"net/http"
)

func (h *BookmarkHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	var payload payload.SignupRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.respondInvalid(w, "Invalid user data", err, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Signup,
			"request_id", requestId)
		return
	}

	err := h.bookmarks.Signup(r.Context(), payload.ToMessage())
	if err != nil {
		var dupErr *core.DuplicateUserError
		switch {
		case errors.As(err, &dupErr) && dupErr.Field == "email":
			h.respond(w, Response{
				Message: "Email already exists",
				Error:   "duplicate email",
				Field:   "email",
			}, http.StatusConflict, requestId)
		case errors.As(err, &dupErr) && dupErr.Field == "username":
			h.respond(w, Response{
				Message: "Username already exists",
				Error:   "duplicate username",
				Field:   "username",
			}, http.StatusConflict, requestId)
		case errors.Is(err, core.ErrUserExists):
			h.respond(w, Response{
				Message: "User already exists",
				Error:   "duplicate key error",
			}, http.StatusConflict, requestId)
		default:
			h.respond(w, Response{
				Message: "Error creating user",
				Error:   err.Error(),
			}, http.StatusInternalServerError, requestId)
		}
		h.logs.Errorw("signup failed",
			"error", err,
			"handler", Signup,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "user created successfully !"}, http.StatusOK, requestId)
}

func (h *BookmarkHandler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	var payload payload.SigninRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.respondInvalid(w, "Invalid user data", err, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Signin,
			"request_id", requestId)
		return
	}

	token, err := h.bookmarks.Signin(r.Context(), payload.ToMessage())
	if err != nil {
		switch {
		case errors.Is(err, core.ErrUserNotFound):
			h.respond(w, Response{Message: "User not found"}, http.StatusBadRequest, requestId)
		case errors.Is(err, core.ErrIncorrectPassword):
			h.respond(w, Response{Message: "Invalid email or password"}, http.StatusForbidden, requestId)
		default:
			h.respond(w, Response{
				Message: "Error signing in",
				Error:   err.Error(),
			}, http.StatusInternalServerError, requestId)
		}
		h.logs.Errorw("signin failed",
			"error", err,
			"handler", Signin,
			"request_id", requestId)
		return
	}

	h.respond(w, SigninResponse{
		Message: "User signed in successfully",
		Token:   token,
	}, http.StatusOK, requestId)
}

func (h *BookmarkHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	userID := middleware.IdentityFromContext(r.Context())

	user, err := h.bookmarks.Me(r.Context(), userID)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.respond(w, Response{Message: "User not found"}, http.StatusNotFound, requestId)
			return
		}
		h.respond(w, Response{
			Message: "Failed to fetch user info",
			Error:   err.Error(),
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to fetch user info",
			"error", err,
			"handler", Me,
			"request_id", requestId)
		return
	}

	h.respond(w, user, http.StatusOK, requestId)
}

func (h *BookmarkHandler) respondInvalid(w http.ResponseWriter, message string, err error, requestId string) {
	resp := Response{
		Message: message,
		Error:   err.Error(),
	}
	if fieldErrs := payload.FieldErrors(err); fieldErrs != nil {
		resp.Details = fieldErrs
	}
	h.respond(w, resp, http.StatusBadRequest, requestId)
}
