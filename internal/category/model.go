package category

import "time"

type Category struct {
	CategoryID int64     `json:"category_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// Seed is the fixed starter set installed by the migrations.
var Seed = []string{
	"Work",
	"Dinner",
	"Investments",
	"Gifts",
	"Transportation",
	"Medical & Healthcare",
	"Personal Spending",
	"Saving",
}
