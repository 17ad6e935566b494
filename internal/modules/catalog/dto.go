package catalog

import (
	"encoding/json"

	"github.com/NickolasCage52/School-MVP/internal/domain"
)

// ProgramCard is the catalog-page view of a program.
type ProgramCard struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Subtitle  string   `json:"subtitle,omitempty"`
	Slug      string   `json:"slug"`
	Tags      []string `json:"tags"`
	ShortDesc string   `json:"shortDesc,omitempty"`
	Duration  string   `json:"duration,omitempty"`
	Format    string   `json:"format,omitempty"`
	Level     string   `json:"level,omitempty"`
	StartDate string   `json:"startDate,omitempty"`
	OrderNum  int      `json:"orderNum"`
}

type DirectionOut struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Slug     string        `json:"slug"`
	OrderNum int           `json:"orderNum"`
	Programs []ProgramCard `json:"programs"`
}

type DirectionRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type PackageOut struct {
	ID          string   `json:"id"`
	ProgramID   string   `json:"programId"`
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Features    []string `json:"features"`
	Recommended bool     `json:"recommended"`
	OrderNum    int      `json:"orderNum"`
}

// ProgramDetail is the program-page payload with all stored JSON text
// fields parsed out.
type ProgramDetail struct {
	ID             string        `json:"id"`
	DirectionID    string        `json:"directionId"`
	Direction      *DirectionRef `json:"direction"`
	Title          string        `json:"title"`
	Subtitle       string        `json:"subtitle,omitempty"`
	Slug           string        `json:"slug"`
	Tags           []string      `json:"tags"`
	ShortDesc      string        `json:"shortDesc,omitempty"`
	TargetAudience any           `json:"targetAudience"`
	Outcomes       any           `json:"outcomes"`
	Structure      any           `json:"structure"`
	Duration       string        `json:"duration,omitempty"`
	Format         string        `json:"format,omitempty"`
	Level          string        `json:"level,omitempty"`
	StartDate      string        `json:"startDate,omitempty"`
	FAQ            any           `json:"faq"`
	HowItWorks     string        `json:"howItWorks,omitempty"`
	Testimonials   any           `json:"testimonials"`
	Instructors    any           `json:"instructors"`
	OrderNum       int           `json:"orderNum"`
	Packages       []PackageOut  `json:"packages"`
}

func toCard(p *domain.Program) ProgramCard {
	return ProgramCard{
		ID:        p.ID,
		Title:     p.Title,
		Subtitle:  p.Subtitle,
		Slug:      p.Slug,
		Tags:      parseStrings(p.Tags),
		ShortDesc: p.ShortDesc,
		Duration:  p.Duration,
		Format:    p.Format,
		Level:     p.Level,
		StartDate: p.StartDate,
		OrderNum:  p.OrderNum,
	}
}

func toDetail(p *domain.Program) ProgramDetail {
	out := ProgramDetail{
		ID:             p.ID,
		DirectionID:    p.DirectionID,
		Title:          p.Title,
		Subtitle:       p.Subtitle,
		Slug:           p.Slug,
		Tags:           parseStrings(p.Tags),
		ShortDesc:      p.ShortDesc,
		TargetAudience: parseList(p.TargetAudience),
		Outcomes:       parseList(p.Outcomes),
		Structure:      parseList(p.Structure),
		Duration:       p.Duration,
		Format:         p.Format,
		Level:          p.Level,
		StartDate:      p.StartDate,
		FAQ:            parseList(p.FAQ),
		HowItWorks:     p.HowItWorks,
		Testimonials:   parseList(p.Testimonials),
		Instructors:    parseList(p.Instructors),
		OrderNum:       p.OrderNum,
		Packages:       []PackageOut{},
	}
	if p.Direction != nil {
		out.Direction = &DirectionRef{Name: p.Direction.Name, Slug: p.Direction.Slug}
	}
	for _, pkg := range p.Packages {
		out.Packages = append(out.Packages, PackageOut{
			ID:          pkg.ID,
			ProgramID:   pkg.ProgramID,
			Name:        pkg.Name,
			Price:       pkg.Price,
			Features:    parseStrings(pkg.Features),
			Recommended: pkg.Recommended,
			OrderNum:    pkg.OrderNum,
		})
	}
	return out
}

// parseStrings reads a stored JSON array of strings; garbage degrades to
// an empty list, never an error.
func parseStrings(s string) []string {
	if s == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

// parseList reads any stored JSON array, keeping object elements intact.
func parseList(s string) any {
	if s == "" {
		return []any{}
	}
	var out []any
	if err := json.Unmarshal([]byte(s), &out); err != nil || out == nil {
		return []any{}
	}
	return out
}
