package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jj-aily/aws-sf-log-searcher/internal/config"
)

// Flag variables are package globals, so each test starts from a clean slate.
func resetCriteria() {
	criteria = config.Criteria{}
	logLevel = "error"
}

// Validation failures must surface before any AWS call is attempted, so
// these run offline.

func TestRootCmd_InvalidStatus(t *testing.T) {
	resetCriteria()
	rootCmd.SetArgs([]string{"--hours", "2", "--region", "eu-west-1", "--status", "BOGUS"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BOGUS")
}

func TestRootCmd_MissingHours(t *testing.T) {
	resetCriteria()
	rootCmd.SetArgs([]string{"--region", "eu-west-1"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--hours")
}
