// Package config holds the search criteria parsed from flags and environment.
package config

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// validStatuses is the set of execution statuses the Step Functions API
// accepts as a list filter.
var validStatuses = map[string]struct{}{
	"SUCCEEDED":       {},
	"TIMED_OUT":       {},
	"PENDING_REDRIVE": {},
	"ABORTED":         {},
	"FAILED":          {},
	"RUNNING":         {},
}

// ValidStatus reports whether s is an accepted --status value.
func ValidStatus(s string) bool {
	_, ok := validStatuses[s]
	return ok
}

// StatusValues returns the accepted --status values, sorted for usage text.
func StatusValues() []string {
	out := make([]string, 0, len(validStatuses))
	for s := range validStatuses {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Criteria holds one search run's parameters. Built once from flags;
// read-only for the run's duration. Empty optional fields mean "unset":
// no filter for ExactName/KeySubstring/Status, search every state machine
// for StateMachineARN.
type Criteria struct {
	Hours           int
	StateMachineARN string
	Region          string
	SSORegion       string
	Profile         string
	RoleARN         string
	ExactName       string
	KeySubstring    string
	Status          string
}

// Validate checks required fields and the status enum. It runs before any
// AWS call is made.
func (c Criteria) Validate() error {
	if c.Hours <= 0 {
		return fmt.Errorf("config: --hours must be a positive integer, got %d", c.Hours)
	}
	if c.Region == "" {
		return fmt.Errorf("config: --region is required (or set AWS_REGION)")
	}
	if c.Status != "" && !ValidStatus(c.Status) {
		return fmt.Errorf("config: invalid --status %q (must be one of %s)",
			c.Status, strings.Join(StatusValues(), ", "))
	}
	return nil
}

// Cutoff returns the oldest start date a matching execution may have.
func (c Criteria) Cutoff(now time.Time) time.Time {
	return now.UTC().Add(-time.Duration(c.Hours) * time.Hour)
}
