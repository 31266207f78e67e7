package core

import (
	"errors"
	"fmt"
	"time"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrUserExists error = errors.New("user already exists")
var ErrShareLinkNotFound error = errors.New("share link not found")

// DuplicateUserError tells which unique user field a signup collided on.
type DuplicateUserError struct {
	Field string
}

func (e *DuplicateUserError) Error() string {
	if e.Field == "" {
		return ErrUserExists.Error()
	}
	return fmt.Sprintf("duplicate %s", e.Field)
}

func (e *DuplicateUserError) Is(target error) bool {
	return target == ErrUserExists
}

type Options struct {
	BcryptCost      int
	ShareHashLength int
	TokenTTL        time.Duration
}

type SignupMessage struct {
	Email    string
	Username string
	Password string
}

type SigninMessage struct {
	Email    string
	Password string
}

type ContentMessage struct {
	Title string
	Link  string
	Type  string
}

type UserRecord struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

type OwnerRecord struct {
	ID       string `json:"_id"`
	Username string `json:"username,omitempty"`
}

type ContentRecord struct {
	ID        string      `json:"_id"`
	Title     string      `json:"title"`
	Link      string      `json:"link"`
	Type      string      `json:"type,omitempty"`
	Tags      []string    `json:"tags"`
	Owner     OwnerRecord `json:"userId"`
	CreatedAt time.Time   `json:"createdAt"`
}

type SharedCollection struct {
	Username string          `json:"username"`
	Content  []ContentRecord `json:"content"`
}

type ShareResult struct {
	Hash string
	// Created is false when the caller already had a share link.
	Created bool
}
