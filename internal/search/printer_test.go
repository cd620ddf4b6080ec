package search

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jj-aily/aws-sf-log-searcher/internal/connectors/aws/sfn"
)

func TestPrinter_Match(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	stop := start.Add(5 * time.Minute)

	in, err := ParseInput(`{"name":"bucket","key":"a/b"}`)
	require.NoError(t, err)

	m := Match{
		Detail: sfn.ExecutionDetail{
			ExecutionSummary: sfn.ExecutionSummary{
				Name:      "run-1",
				Status:    "SUCCEEDED",
				StartDate: start,
				StopDate:  &stop,
			},
		},
		Input: in,
	}

	var buf strings.Builder
	p := NewPrinter(&buf)
	require.NoError(t, p.Match(m))

	out := buf.String()
	assert.Contains(t, out, "Name: run-1\n")
	assert.Contains(t, out, "Status: SUCCEEDED\n")
	assert.Contains(t, out, "Start Date: 2026-03-10 09:30:00\n")
	assert.Contains(t, out, "Stop Date: 2026-03-10 09:35:00\n")
	assert.Contains(t, out, "Input:\n")
	assert.Contains(t, out, "    \"key\": \"a/b\"")
	assert.Contains(t, out, strings.Repeat("-", 40))
}

func TestPrinter_Match_NoStopDate(t *testing.T) {
	in, err := ParseInput(`{}`)
	require.NoError(t, err)

	m := Match{
		Detail: sfn.ExecutionDetail{
			ExecutionSummary: sfn.ExecutionSummary{
				Name:      "run-2",
				Status:    "RUNNING",
				StartDate: time.Now(),
			},
		},
		Input: in,
	}

	var buf strings.Builder
	p := NewPrinter(&buf)
	require.NoError(t, p.Match(m))

	assert.NotContains(t, buf.String(), "Stop Date:")
}

func TestPrinter_Header(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).Header("arn:aws:states:eu-west-1:123456789012:stateMachine:dataloader")

	out := buf.String()
	assert.Contains(t, out, "State Machine: arn:aws:states:eu-west-1:123456789012:stateMachine:dataloader\n")
	assert.Contains(t, out, strings.Repeat("-", 80))
}
