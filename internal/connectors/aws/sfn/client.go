// Package sfn wraps the AWS Step Functions control-plane API used to search
// execution history.
package sfn

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	sf "github.com/aws/aws-sdk-go-v2/service/sfn"
	sftypes "github.com/aws/aws-sdk-go-v2/service/sfn/types"

	"github.com/jj-aily/aws-sf-log-searcher/internal/ratelimit"
)

// API is the subset of the Step Functions client used by this package.
type API interface {
	ListExecutions(ctx context.Context, params *sf.ListExecutionsInput, optFns ...func(*sf.Options)) (*sf.ListExecutionsOutput, error)
	DescribeExecution(ctx context.Context, params *sf.DescribeExecutionInput, optFns ...func(*sf.Options)) (*sf.DescribeExecutionOutput, error)
	ListStateMachines(ctx context.Context, params *sf.ListStateMachinesInput, optFns ...func(*sf.Options)) (*sf.ListStateMachinesOutput, error)
}

// ExecutionSummary is one row of a state machine's execution history.
type ExecutionSummary struct {
	ExecutionARN string
	Name         string
	Status       string
	StartDate    time.Time
	StopDate     *time.Time
}

// ExecutionDetail is a summary plus the execution's raw JSON input payload.
type ExecutionDetail struct {
	ExecutionSummary
	StateMachineARN string
	Input           string
}

// StateMachine identifies one deployed state machine.
type StateMachine struct {
	ARN          string
	Name         string
	Type         string
	CreationDate time.Time
}

// Client wraps the Step Functions API with rate limiting.
type Client struct {
	api     API
	limiter *ratelimit.ServiceLimiter
}

// New creates a Step Functions client from an AWS config.
func New(cfg aws.Config, limiter *ratelimit.ServiceLimiter) *Client {
	return &Client{api: sf.NewFromConfig(cfg), limiter: limiter}
}

// NewFromAPI creates a Client from an explicit API implementation (for testing).
func NewFromAPI(api API) *Client {
	return &Client{api: api}
}

func (c *Client) wait(ctx context.Context, operation string) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx, operation)
}

// ListRecentExecutions pages through a state machine's execution history and
// returns summaries of executions started at or after cutoff, newest first.
// The API returns executions ordered by start date descending, so paging
// stops at the first execution older than the cutoff. status, when non-empty,
// is pushed down to the API as a server-side filter.
func (c *Client) ListRecentExecutions(ctx context.Context, stateMachineARN string, cutoff time.Time, status string) ([]ExecutionSummary, error) {
	input := &sf.ListExecutionsInput{
		StateMachineArn: aws.String(stateMachineARN),
	}
	if status != "" {
		input.StatusFilter = sftypes.ExecutionStatus(status)
	}

	var out []ExecutionSummary
	for {
		if err := c.wait(ctx, "ListExecutions"); err != nil {
			return nil, err
		}
		page, err := c.api.ListExecutions(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("sfn: list executions: %w", err)
		}
		for _, e := range page.Executions {
			if e.StartDate == nil || e.StartDate.Before(cutoff) {
				return out, nil
			}
			out = append(out, ExecutionSummary{
				ExecutionARN: aws.ToString(e.ExecutionArn),
				Name:         aws.ToString(e.Name),
				Status:       string(e.Status),
				StartDate:    *e.StartDate,
				StopDate:     e.StopDate,
			})
		}
		if page.NextToken == nil {
			return out, nil
		}
		input.NextToken = page.NextToken
	}
}

// Describe fetches the full record for one execution, including its input.
func (c *Client) Describe(ctx context.Context, executionARN string) (ExecutionDetail, error) {
	if err := c.wait(ctx, "DescribeExecution"); err != nil {
		return ExecutionDetail{}, err
	}
	out, err := c.api.DescribeExecution(ctx, &sf.DescribeExecutionInput{
		ExecutionArn: aws.String(executionARN),
	})
	if err != nil {
		return ExecutionDetail{}, fmt.Errorf("sfn: describe execution %s: %w", executionARN, err)
	}

	detail := ExecutionDetail{
		ExecutionSummary: ExecutionSummary{
			ExecutionARN: aws.ToString(out.ExecutionArn),
			Name:         aws.ToString(out.Name),
			Status:       string(out.Status),
			StopDate:     out.StopDate,
		},
		StateMachineARN: aws.ToString(out.StateMachineArn),
		Input:           aws.ToString(out.Input),
	}
	if out.StartDate != nil {
		detail.StartDate = *out.StartDate
	}
	return detail, nil
}

// ListStateMachines returns every state machine in the account/region.
func (c *Client) ListStateMachines(ctx context.Context) ([]StateMachine, error) {
	input := &sf.ListStateMachinesInput{}

	var out []StateMachine
	for {
		if err := c.wait(ctx, "ListStateMachines"); err != nil {
			return nil, err
		}
		page, err := c.api.ListStateMachines(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("sfn: list state machines: %w", err)
		}
		for _, m := range page.StateMachines {
			sm := StateMachine{
				ARN:  aws.ToString(m.StateMachineArn),
				Name: aws.ToString(m.Name),
				Type: string(m.Type),
			}
			if m.CreationDate != nil {
				sm.CreationDate = *m.CreationDate
			}
			out = append(out, sm)
		}
		if page.NextToken == nil {
			return out, nil
		}
		input.NextToken = page.NextToken
	}
}
