package model

import "time"

// Meal — приём пищи за календарный день. Создаётся атомарно вместе с позициями,
// после создания не редактируется.
type Meal struct {
	ID     int64 `gorm:"primaryKey"`
	UserID int64 `gorm:"not null;index"` // ссылка на users.id

	// Связи
	User  *User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Items []MealItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`

	MealType string `gorm:"not null" json:"meal_type"` // Breakfast|Lunch|Dinner|Snack
	Date     string `gorm:"not null;index" json:"date"` // календарный день YYYY-MM-DD, без времени

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// MealItem — позиция приёма пищи: продукт и множитель порции.
type MealItem struct {
	ID     int64 `gorm:"primaryKey"`
	MealID int64 `gorm:"not null;index"`
	FoodID int64 `gorm:"not null;index" json:"food_id"`

	Food *Food `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"food,omitempty"`

	Quantity float64 `gorm:"not null" json:"quantity"` // > 0, множитель к макросам Food
}
