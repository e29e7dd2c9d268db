package model

import "time"

// User — учётная запись. Все прочие сущности принадлежат пользователю по user_id.
type User struct {
	ID       int64  `gorm:"primaryKey"`
	Login    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"` // bcrypt-хеш, никогда не plaintext

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
