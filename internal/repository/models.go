package repository

import "time"

type User struct {
	ID           string    `gorm:"primaryKey;autoIncrement:false"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

type Content struct {
	ID        string    `gorm:"primaryKey;autoIncrement:false"`
	Title     string    `gorm:"type:text"`
	Link      string    `gorm:"type:text"`
	Type      string    `gorm:"type:varchar(64)"`
	Tags      []string  `gorm:"serializer:json"`
	OwnerID   string    `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// ShareLink is a capability to read one user's content; at most one per owner.
type ShareLink struct {
	ID        string    `gorm:"primaryKey;autoIncrement:false"`
	Hash      string    `gorm:"size:32;uniqueIndex;not null"`
	OwnerID   string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"not null"`
}
