package model

import "time"

// Food — позиция личного каталога продуктов пользователя.
// Макросы заданы в граммах на указанную порцию (Unit — свободный текст).
type Food struct {
	ID     int64 `gorm:"primaryKey"`
	UserID int64 `gorm:"not null;index"` // ссылка на users.id

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Name     string `gorm:"not null" json:"name"`
	Category string `json:"category"`
	Unit     string `json:"unit"`

	Protein float64 `gorm:"not null;default:0" json:"protein"`
	Carbs   float64 `gorm:"not null;default:0" json:"carbs"`
	Fat     float64 `gorm:"not null;default:0" json:"fat"`

	// Calories — производное поле: 4*protein + 4*carbs + 9*fat.
	// Пересчитывается при каждой записи, извне не принимается.
	Calories float64 `gorm:"not null;default:0" json:"calories"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
