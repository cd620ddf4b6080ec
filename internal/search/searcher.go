package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/jj-aily/aws-sf-log-searcher/internal/config"
	"github.com/jj-aily/aws-sf-log-searcher/internal/connectors/aws/sfn"
)

// ExecutionAPI is the subset of the Step Functions wrapper the searcher uses.
type ExecutionAPI interface {
	ListRecentExecutions(ctx context.Context, stateMachineARN string, cutoff time.Time, status string) ([]sfn.ExecutionSummary, error)
	Describe(ctx context.Context, executionARN string) (sfn.ExecutionDetail, error)
}

// Match pairs an execution record with its parsed input.
type Match struct {
	Detail sfn.ExecutionDetail
	Input  Input
}

// Searcher runs the list -> describe -> filter pipeline against one state
// machine at a time, strictly sequentially.
type Searcher struct {
	client   ExecutionAPI
	criteria config.Criteria

	// now is injectable for testing.
	now func() time.Time
}

// New creates a Searcher for the given criteria.
func New(client ExecutionAPI, criteria config.Criteria) *Searcher {
	return &Searcher{client: client, criteria: criteria, now: time.Now}
}

// Run returns the matching executions for one state machine, newest first.
// Remote errors abort the run; an execution whose input fails to parse is
// skipped with a warning so one bad payload cannot hide the rest.
func (s *Searcher) Run(ctx context.Context, stateMachineARN string) ([]Match, error) {
	cutoff := s.criteria.Cutoff(s.now())

	summaries, err := s.client.ListRecentExecutions(ctx, stateMachineARN, cutoff, s.criteria.Status)
	if err != nil {
		return nil, err
	}

	var matches []Match
	for _, summary := range summaries {
		detail, err := s.client.Describe(ctx, summary.ExecutionARN)
		if err != nil {
			return nil, err
		}

		in, err := ParseInput(detail.Input)
		if err != nil {
			slog.Warn("skipping execution with unparseable input",
				"execution", summary.ExecutionARN, "error", err)
			continue
		}
		if !in.Matches(s.criteria.ExactName, s.criteria.KeySubstring) {
			continue
		}

		matches = append(matches, Match{Detail: detail, Input: in})
	}
	return matches, nil
}
