package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCriteria() Criteria {
	return Criteria{
		Hours:           24,
		StateMachineARN: "arn:aws:states:eu-west-1:123456789012:stateMachine:dataloader",
		Region:          "eu-west-1",
	}
}

func TestCriteria_Validate(t *testing.T) {
	require.NoError(t, validCriteria().Validate())
}

func TestCriteria_Validate_HoursRequired(t *testing.T) {
	c := validCriteria()
	c.Hours = 0
	assert.Error(t, c.Validate())

	c.Hours = -3
	assert.Error(t, c.Validate())
}

func TestCriteria_Validate_RegionRequired(t *testing.T) {
	c := validCriteria()
	c.Region = ""
	assert.Error(t, c.Validate())
}

func TestCriteria_Validate_Status(t *testing.T) {
	c := validCriteria()
	for _, s := range StatusValues() {
		c.Status = s
		assert.NoError(t, c.Validate(), s)
	}

	c.Status = "BOGUS"
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BOGUS")
}

func TestCriteria_Validate_StateMachineOptional(t *testing.T) {
	// An empty ARN means "search every machine in the region".
	c := validCriteria()
	c.StateMachineARN = ""
	assert.NoError(t, c.Validate())
}

func TestCriteria_Cutoff(t *testing.T) {
	c := validCriteria()
	c.Hours = 6

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC), c.Cutoff(now))
}

func TestStatusValues_Sorted(t *testing.T) {
	vals := StatusValues()
	require.Len(t, vals, 6)
	assert.Equal(t, []string{"ABORTED", "FAILED", "PENDING_REDRIVE", "RUNNING", "SUCCEEDED", "TIMED_OUT"}, vals)
}
