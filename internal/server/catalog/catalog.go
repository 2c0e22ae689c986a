// Package catalog serves the static course catalog and live-class list.
// Catalog data is embedded at build time and read-only at runtime.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"time"
)

//go:embed data/courses.json
var dataFS embed.FS

// Course is one sellable catalog item.
type Course struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

// LiveClass is a scheduled live session.
type LiveClass struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	StartTime   time.Time `json:"startTime"`
	Description string    `json:"description"`
}

type Service struct {
	courses map[string][]Course
}

// NewService loads the embedded catalog. The data file ships with the binary,
// so a parse failure is a build defect, not a runtime condition.
func NewService() (*Service, error) {
	raw, err := dataFS.ReadFile("data/courses.json")
	if err != nil {
		return nil, fmt.Errorf("error reading catalog data: %w", err)
	}

	var courses map[string][]Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		return nil, fmt.Errorf("error parsing catalog data: %w", err)
	}

	return &Service{courses: courses}, nil
}

// Courses returns the full catalog grouped by category key.
func (s *Service) Courses() map[string][]Course {
	return s.courses
}

// Category returns the items under the given category key.
func (s *Service) Category(key string) ([]Course, bool) {
	list, ok := s.courses[key]
	return list, ok
}

// LiveClasses returns the upcoming live sessions.
func (s *Service) LiveClasses() []LiveClass {
	return []LiveClass{
		{
			ID:          1,
			Title:       "Live Physics Class",
			StartTime:   time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC),
			Description: "Join the live physics class and solve problems together.",
		},
		{
			ID:          2,
			Title:       "Chemistry Q&A Session",
			StartTime:   time.Date(2025, 11, 2, 15, 0, 0, 0, time.UTC),
			Description: "Ask your doubts in our live chemistry Q&A session.",
		},
	}
}
