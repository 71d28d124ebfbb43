package domain

import (
	"fmt"
	"strings"
)

type DeployStatus string

const (
	DeployPlanning  DeployStatus = "planning"
	DeployScheduled DeployStatus = "scheduled"
	DeployDeployed  DeployStatus = "deployed"
)

type LifeCycle string

const (
	LifeCycleBacklog    LifeCycle = "backlog"
	LifeCycleTodo       LifeCycle = "todo"
	LifeCycleInProgress LifeCycle = "in_progress"
	LifeCycleDone       LifeCycle = "done"
	LifeCycleCompleted  LifeCycle = "completed"
)

// ValidLifeCycles is the canonical set of accepted issue lifecycle strings.
var ValidLifeCycles = map[LifeCycle]bool{
	LifeCycleBacklog: true, LifeCycleTodo: true, LifeCycleInProgress: true,
	LifeCycleDone: true, LifeCycleCompleted: true,
}

// ParseLifeCycle accepts the canonical names case-insensitively. "inprogress"
// and "in-progress" are accepted as spellings of in_progress.
func ParseLifeCycle(s string) (LifeCycle, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "-", "_")
	if norm == "inprogress" {
		norm = string(LifeCycleInProgress)
	}
	lc := LifeCycle(norm)
	if !ValidLifeCycles[lc] {
		return "", fmt.Errorf("unknown issue lifecycle %q", s)
	}
	return lc, nil
}
