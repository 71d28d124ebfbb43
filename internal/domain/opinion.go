package domain

import (
	"fmt"
	"strings"
	"time"
)

// ReleaseOpinion is a member comment left on a release note.
type ReleaseOpinion struct {
	ID        string
	ReleaseID string
	Author    string
	Content   string
	Active    bool
	CreatedAt time.Time
}

func (o *ReleaseOpinion) Validate() error {
	if strings.TrimSpace(o.Content) == "" {
		return fmt.Errorf("opinion content is required")
	}
	return nil
}
