package domain

type HeroPage struct {
	ID                 string  `db:"id" json:"id"`
	Title              string  `db:"title" json:"title"`
	Subtitle           *string `db:"subtitle" json:"subtitle"`
	Description        *string `db:"description" json:"description"`
	BackgroundImageURL *string `db:"background_image_url" json:"background_image_url"`
	DisplayOrder       int     `db:"display_order" json:"display_order"`
	IsActive           bool    `db:"is_active" json:"is_active"`
}
