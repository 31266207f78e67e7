package repository

import (
	"context"
	"errors"
	"fmt"
	"memoarc/internal/db"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrShareLinkNotFound error = errors.New("share link not found")

var TimeNow = time.Now

// DuplicateFieldError names the field whose uniqueness a write violated.
type DuplicateFieldError struct {
	Field string
}

func (e *DuplicateFieldError) Error() string {
	if e.Field == "" {
		return "duplicate key error"
	}
	return fmt.Sprintf("duplicate %s", e.Field)
}

func (e *DuplicateFieldError) Unwrap() error {
	return db.ErrDuplicateKey
}

type BookmarkRepository struct {
	db Storage
}

func NewBookmarkRepository(db Storage) *BookmarkRepository {
	return &BookmarkRepository{
		db: db,
	}
}

func (r *BookmarkRepository) Migrate() error {
	err := r.db.MigrateModels(&User{}, &Content{}, &ShareLink{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *BookmarkRepository) CreateUser(ctx context.Context, user User) (User, error) {
	user.ID = uuid.NewString()
	user.CreatedAt = TimeNow()

	if err := r.db.Create(ctx, &user); err != nil {
		return User{}, fmt.Errorf("create user: %w", duplicateField(err, "email", "username"))
	}

	return user, nil
}

func (r *BookmarkRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return r.getUserBy(ctx, "email", email)
}

func (r *BookmarkRepository) GetUserByID(ctx context.Context, id string) (User, error) {
	return r.getUserBy(ctx, "id", id)
}

func (r *BookmarkRepository) getUserBy(ctx context.Context, column, value string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, column, value, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by %s: %w", column, err)
	}

	return user, nil
}

func (r *BookmarkRepository) CreateContent(ctx context.Context, content Content) (Content, error) {
	content.ID = uuid.NewString()
	content.CreatedAt = TimeNow()
	if content.Tags == nil {
		content.Tags = []string{}
	}

	if err := r.db.Create(ctx, &content); err != nil {
		return Content{}, fmt.Errorf("create content: %w", err)
	}

	return content, nil
}

func (r *BookmarkRepository) GetContentByOwner(ctx context.Context, ownerID string) ([]Content, error) {
	contents := []Content{}
	err := r.db.GetAllBy(ctx, "owner_id", ownerID, &contents)
	if err != nil {
		return nil, fmt.Errorf("get content by owner: %w", err)
	}

	return contents, nil
}

// DeleteContent removes the content only when it belongs to ownerID.
func (r *BookmarkRepository) DeleteContent(ctx context.Context, contentID, ownerID string) (int64, error) {
	deleted, err := r.db.DeleteBy(ctx, &Content{}, map[string]any{
		"id":       contentID,
		"owner_id": ownerID,
	})
	if err != nil {
		return 0, fmt.Errorf("delete content: %w", err)
	}

	return deleted, nil
}

func (r *BookmarkRepository) GetShareLinkByOwner(ctx context.Context, ownerID string) (ShareLink, error) {
	return r.getShareLinkBy(ctx, "owner_id", ownerID)
}

func (r *BookmarkRepository) GetShareLinkByHash(ctx context.Context, hash string) (ShareLink, error) {
	return r.getShareLinkBy(ctx, "hash", hash)
}

func (r *BookmarkRepository) getShareLinkBy(ctx context.Context, column, value string) (ShareLink, error) {
	var link ShareLink

	err := r.db.GetOneBy(ctx, column, value, &link)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ShareLink{}, ErrShareLinkNotFound
		}
		return ShareLink{}, fmt.Errorf("get share link by %s: %w", column, err)
	}

	return link, nil
}

func (r *BookmarkRepository) CreateShareLink(ctx context.Context, ownerID, hash string) (ShareLink, error) {
	link := ShareLink{
		ID:        uuid.NewString(),
		Hash:      hash,
		OwnerID:   ownerID,
		CreatedAt: TimeNow(),
	}

	if err := r.db.Create(ctx, &link); err != nil {
		return ShareLink{}, fmt.Errorf("create share link: %w", duplicateField(err, "owner", "hash"))
	}

	return link, nil
}

func (r *BookmarkRepository) DeleteShareLink(ctx context.Context, ownerID string) (int64, error) {
	deleted, err := r.db.DeleteBy(ctx, &ShareLink{}, map[string]any{
		"owner_id": ownerID,
	})
	if err != nil {
		return 0, fmt.Errorf("delete share link: %w", err)
	}

	return deleted, nil
}

// duplicateField maps a unique violation onto the first field whose name
// appears in the violated constraint.
func duplicateField(err error, fields ...string) error {
	var dupErr *db.DuplicateKeyError
	if !errors.As(err, &dupErr) {
		return err
	}

	for _, field := range fields {
		if strings.Contains(dupErr.Constraint, field) {
			return &DuplicateFieldError{Field: field}
		}
	}
	return &DuplicateFieldError{}
}
