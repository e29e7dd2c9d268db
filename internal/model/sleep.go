package model

import "time"

// SleepLog — запись о сне. Концептуальный ключ (user_id, date):
// повторная запись за ту же дату перезаписывает часы/качество/заметки.
type SleepLog struct {
	ID     int64 `gorm:"primaryKey"`
	UserID int64 `gorm:"not null;index"` // ссылка на users.id

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Date    string  `gorm:"not null;index" json:"date"` // YYYY-MM-DD
	Hours   float64 `gorm:"not null" json:"hours"`
	Quality string  `json:"quality"`
	Notes   string  `json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
