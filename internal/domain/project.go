package domain

import (
	"fmt"
	"strings"
	"time"
)

type Project struct {
	ID          string
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the user-editable fields.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("project name is required")
	}
	return nil
}

// DisplayID returns the first 8 characters of the ID.
func (p *Project) DisplayID() string {
	return shortID(p.ID)
}

func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
