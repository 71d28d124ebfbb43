package service

import (
	"fmt"

	"github.com/alexanderramin/releaser/internal/contract"
)

// invalidInput tags a validation failure so callers can classify it.
func invalidInput(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", contract.ErrInvalidInput, err)
}

// dedupe returns ids without blanks or repeats, keeping first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// stringOr returns *p, or fallback when p is nil.
func stringOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
