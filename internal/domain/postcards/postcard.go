package postcards

import (
	"time"

	"archarad-app/internal/i18n"
)

// Postcard is the archive's sole entity. Titles and descriptions are stored
// as flat per-language columns (title_hu .. description_de) and surfaced as
// i18n.Text values.
type Postcard struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title       i18n.Text `gorm:"embedded;embeddedPrefix:title_" json:"title"`
	Description i18n.Text `gorm:"embedded;embeddedPrefix:description_" json:"description"`

	Year     *int    `gorm:"index" json:"year,omitempty"`
	District *string `gorm:"size:100" json:"district,omitempty"`

	// Never empty once the record exists; carried forward on update unless
	// a replacement image is uploaded.
	ImageURL string `gorm:"not null" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasYear reports whether the card carries a year.
func (p Postcard) HasYear() bool {
	return p.Year != nil
}

// YearOrZero returns the year, or 0 for undated cards.
func (p Postcard) YearOrZero() int {
	if p.Year == nil {
		return 0
	}
	return *p.Year
}
