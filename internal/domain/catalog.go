package domain

import "time"

// Direction groups programs in the catalog ("Маркетинг", "Дизайн", ...).
type Direction struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Name     string `json:"name"`
	Slug     string `json:"slug" gorm:"index"`
	OrderNum int    `json:"orderNum"`

	Programs []Program `json:"programs,omitempty" gorm:"foreignKey:DirectionID"`
}

// Program is one learning program. The list-valued fields (Tags, Outcomes,
// FAQ, ...) are stored as JSON text and parsed at the API boundary; intake
// treats program content as opaque referenced data.
type Program struct {
	ID          string `json:"id" gorm:"primaryKey"`
	DirectionID string `json:"directionId" gorm:"index"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Slug        string `json:"slug" gorm:"index"`

	Tags           string `json:"-" gorm:"type:text"`
	ShortDesc      string `json:"shortDesc,omitempty" gorm:"type:text"`
	TargetAudience string `json:"-" gorm:"type:text"`
	Outcomes       string `json:"-" gorm:"type:text"`
	Structure      string `json:"-" gorm:"type:text"`
	FAQ            string `json:"-" gorm:"type:text"`
	Testimonials   string `json:"-" gorm:"type:text"`
	Instructors    string `json:"-" gorm:"type:text"`
	HowItWorks     string `json:"howItWorks,omitempty" gorm:"type:text"`

	Duration  string `json:"duration,omitempty"`
	Format    string `json:"format,omitempty"`
	Level     string `json:"level,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	OrderNum  int    `json:"orderNum"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Direction *Direction `json:"-" gorm:"foreignKey:DirectionID"`
	Packages  []Package  `json:"packages,omitempty" gorm:"foreignKey:ProgramID"`
}

// Package is a purchasable tier of a program.
type Package struct {
	ID          string `json:"id" gorm:"primaryKey"`
	ProgramID   string `json:"programId" gorm:"index"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Features    string `json:"-" gorm:"type:text"`
	Recommended bool   `json:"recommended"`
	OrderNum    int    `json:"orderNum"`
}
