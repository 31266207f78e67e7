package handler

import (
	"context"
	"memoarc/internal/core"
	"memoarc/internal/preview"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name BookmarkService . BookmarkService
type BookmarkService interface {
	Signup(ctx context.Context, msg core.SignupMessage) error
	Signin(ctx context.Context, msg core.SigninMessage) (string, error)
	Me(ctx context.Context, userID string) (core.UserRecord, error)
	CreateContent(ctx context.Context, userID string, msg core.ContentMessage) (core.ContentRecord, error)
	ListContent(ctx context.Context, userID string) ([]core.ContentRecord, error)
	DeleteContent(ctx context.Context, userID, contentID string) error
	Share(ctx context.Context, userID string) (core.ShareResult, error)
	Unshare(ctx context.Context, userID string) error
	SharedContent(ctx context.Context, hash string) (core.SharedCollection, error)
}

//counterfeiter:generate -o fake -fake-name PreviewService . PreviewService
type PreviewService interface {
	Preview(ctx context.Context, raw string) (preview.Record, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

type Authenticator interface {
	Authenticate(next http.HandlerFunc) http.HandlerFunc
}
