package core

import (
	"context"
	"memoarc/internal/repository"
	tokenIssuer "memoarc/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) (repository.User, error)
	GetUserByEmail(ctx context.Context, email string) (repository.User, error)
	GetUserByID(ctx context.Context, id string) (repository.User, error)
	CreateContent(ctx context.Context, content repository.Content) (repository.Content, error)
	GetContentByOwner(ctx context.Context, ownerID string) ([]repository.Content, error)
	DeleteContent(ctx context.Context, contentID, ownerID string) (int64, error)
	GetShareLinkByOwner(ctx context.Context, ownerID string) (repository.ShareLink, error)
	GetShareLinkByHash(ctx context.Context, hash string) (repository.ShareLink, error)
	CreateShareLink(ctx context.Context, ownerID, hash string) (repository.ShareLink, error)
	DeleteShareLink(ctx context.Context, ownerID string) (int64, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
}

//counterfeiter:generate -o fake -fake-name HashGenerator . HashGenerator
type HashGenerator interface {
	Generate(length int) (string, error)
}
