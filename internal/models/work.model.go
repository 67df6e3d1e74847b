package models

// Work identifiers are derived deterministically as
// "<composerSlug>/<lower(catalogSystem)>-<catalogNumber>", which makes the
// upsert idempotent: identical logical input always lands on the same row.
type Work struct {
	ID            string  `gorm:"type:text;primaryKey" json:"id"`
	ComposerID    string  `gorm:"type:text;index;uniqueIndex:idx_works_composer_catalog" json:"composerId"`
	Title         string  `gorm:"type:text" json:"title"`
	Nickname      *string `gorm:"type:text" json:"nickname,omitempty"`
	CatalogSystem string  `gorm:"type:text;uniqueIndex:idx_works_composer_catalog" json:"catalogSystem"`
	CatalogNumber string  `gorm:"type:text;uniqueIndex:idx_works_composer_catalog" json:"catalogNumber"`
	YearComposed  *int    `gorm:"type:int"  json:"yearComposed,omitempty"`
	Form          *string `gorm:"type:text" json:"form,omitempty"`

	Composer  *Composer  `gorm:"foreignKey:ComposerID" json:"composer,omitempty"`
	Movements []Movement `gorm:"foreignKey:WorkID"     json:"movements,omitempty"`
}

// Movement identifiers are "<workID>/<number>", numbers are 1-based and unique
// within a Work.
type Movement struct {
	ID     string  `gorm:"type:text;primaryKey" json:"id"`
	WorkID string  `gorm:"type:text;index;uniqueIndex:idx_movements_work_number" json:"workId"`
	Number int     `gorm:"type:int;uniqueIndex:idx_movements_work_number"        json:"number"`
	Title  *string `gorm:"type:text" json:"title,omitempty"`

	Work *Work `gorm:"foreignKey:WorkID" json:"work,omitempty"`
}
