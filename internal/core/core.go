package core

import (
	"context"
	"errors"
	"fmt"
	"memoarc/internal/repository"
	tokenIssuer "memoarc/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Bookmarks implements account, content and share-link operations on top of the repository.
type Bookmarks struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
	hashGen   HashGenerator
	opts      Options
}

// NewBookmarks is a constructor function for the Bookmarks type.
func NewBookmarks(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, hashGen HashGenerator, opts Options) *Bookmarks {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.ShareHashLength == 0 {
		opts.ShareHashLength = 10
	}
	return &Bookmarks{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		hashGen:   hashGen,
		opts:      opts,
	}
}

// Signup hashes the password and stores a new user. A collision on email or username is
// reported as a DuplicateUserError.
func (b *Bookmarks) Signup(ctx context.Context, msg SignupMessage) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(msg.Password), b.opts.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user, err := b.repo.CreateUser(ctx, repository.User{
		Email:        msg.Email,
		Username:     msg.Username,
		PasswordHash: string(hashed),
	})
	if err != nil {
		var dupErr *repository.DuplicateFieldError
		if errors.As(err, &dupErr) {
			return &DuplicateUserError{Field: dupErr.Field}
		}
		return fmt.Errorf("create user: %w", err)
	}

	b.logs.Infow("user signed up", "userId", user.ID)
	return nil
}

// Signin checks the credentials and issues a token bound to the user's id.
func (b *Bookmarks) Signin(ctx context.Context, msg SigninMessage) (string, error) {
	user, err := b.repo.GetUserByEmail(ctx, msg.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	token := b.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		Subject:    user.ID,
		Expiration: b.opts.TokenTTL,
	})
	signed, err := b.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Me returns the public profile of the authenticated user.
func (b *Bookmarks) Me(ctx context.Context, userID string) (UserRecord, error) {
	user, err := b.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("get user by id: %w", err)
	}

	return UserRecord{Email: user.Email, Username: user.Username}, nil
}

// CreateContent stores a bookmark owned by userID. The link is stored as given.
func (b *Bookmarks) CreateContent(ctx context.Context, userID string, msg ContentMessage) (ContentRecord, error) {
	content, err := b.repo.CreateContent(ctx, repository.Content{
		Title:   msg.Title,
		Link:    msg.Link,
		Type:    msg.Type,
		Tags:    []string{},
		OwnerID: userID,
	})
	if err != nil {
		return ContentRecord{}, fmt.Errorf("create content: %w", err)
	}

	return toContentRecord(content, OwnerRecord{ID: userID}), nil
}

// ListContent returns every bookmark owned by userID with the owner's username attached.
func (b *Bookmarks) ListContent(ctx context.Context, userID string) ([]ContentRecord, error) {
	contents, err := b.repo.GetContentByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get content by owner: %w", err)
	}

	owner := OwnerRecord{ID: userID}
	user, err := b.repo.GetUserByID(ctx, userID)
	switch {
	case err == nil:
		owner.Username = user.Username
	case errors.Is(err, repository.ErrUserNotFound):
		b.logs.Warnw("content owner not found", "userId", userID)
	default:
		return nil, fmt.Errorf("get content owner: %w", err)
	}

	return toContentRecords(contents, owner), nil
}

// DeleteContent removes contentID if userID owns it. Deleting nothing is not an error.
func (b *Bookmarks) DeleteContent(ctx context.Context, userID, contentID string) error {
	deleted, err := b.repo.DeleteContent(ctx, contentID, userID)
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}

	b.logs.Infow("content deleted", "userId", userID, "contentId", contentID, "count", deleted)
	return nil
}

// Share returns the user's share hash, creating one on first use.
func (b *Bookmarks) Share(ctx context.Context, userID string) (ShareResult, error) {
	existing, err := b.repo.GetShareLinkByOwner(ctx, userID)
	if err == nil {
		return ShareResult{Hash: existing.Hash}, nil
	}
	if !errors.Is(err, repository.ErrShareLinkNotFound) {
		return ShareResult{}, fmt.Errorf("get share link: %w", err)
	}

	hash, err := b.hashGen.Generate(b.opts.ShareHashLength)
	if err != nil {
		return ShareResult{}, fmt.Errorf("generate share hash: %w", err)
	}

	link, err := b.repo.CreateShareLink(ctx, userID, hash)
	if err != nil {
		var dupErr *repository.DuplicateFieldError
		if errors.As(err, &dupErr) && dupErr.Field == "owner" {
			// a concurrent request created the owner's link first
			winner, getErr := b.repo.GetShareLinkByOwner(ctx, userID)
			if getErr != nil {
				return ShareResult{}, fmt.Errorf("get share link after conflict: %w", getErr)
			}
			return ShareResult{Hash: winner.Hash}, nil
		}
		return ShareResult{}, fmt.Errorf("create share link: %w", err)
	}

	b.logs.Infow("share link created", "userId", userID)
	return ShareResult{Hash: link.Hash, Created: true}, nil
}

// Unshare deletes the user's share link, if any.
func (b *Bookmarks) Unshare(ctx context.Context, userID string) error {
	if _, err := b.repo.DeleteShareLink(ctx, userID); err != nil {
		return fmt.Errorf("delete share link: %w", err)
	}

	b.logs.Infow("share link removed", "userId", userID)
	return nil
}

// SharedContent resolves a share hash into its owner's username and content.
func (b *Bookmarks) SharedContent(ctx context.Context, hash string) (SharedCollection, error) {
	link, err := b.repo.GetShareLinkByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, repository.ErrShareLinkNotFound) {
			return SharedCollection{}, ErrShareLinkNotFound
		}
		return SharedCollection{}, fmt.Errorf("get share link: %w", err)
	}

	contents, err := b.repo.GetContentByOwner(ctx, link.OwnerID)
	if err != nil {
		return SharedCollection{}, fmt.Errorf("get shared content: %w", err)
	}

	owner := OwnerRecord{ID: link.OwnerID}
	user, err := b.repo.GetUserByID(ctx, link.OwnerID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return SharedCollection{}, fmt.Errorf("get share owner: %w", err)
	}
	owner.Username = user.Username

	return SharedCollection{
		Username: user.Username,
		Content:  toContentRecords(contents, owner),
	}, nil
}

func toContentRecords(contents []repository.Content, owner OwnerRecord) []ContentRecord {
	records := make([]ContentRecord, len(contents))
	for i, c := range contents {
		records[i] = toContentRecord(c, owner)
	}
	return records
}

func toContentRecord(c repository.Content, owner OwnerRecord) ContentRecord {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return ContentRecord{
		ID:        c.ID,
		Title:     c.Title,
		Link:      c.Link,
		Type:      c.Type,
		Tags:      tags,
		Owner:     owner,
		CreatedAt: c.CreatedAt,
	}
}
