package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Description    string          `json:"description"`
	CategoryID     *int            `json:"category_id"`
	CategoryName   string          `json:"category_name"`
	ImageFilename  string          `json:"image_filename"`
	ImageUpdatedAt *time.Time      `json:"image_updated_at"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
