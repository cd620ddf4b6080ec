package aws

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRoleARN(t *testing.T) {
	t.Parallel()
	tests := []struct {
		arn     string
		wantErr bool
	}{
		{"arn:aws:iam::123456789012:role/MyRole", false},
		{"arn:aws:iam::123456789012:role/path/MyRole", false},
		{"arn:aws:iam::12345:role/Short", true},           // too few digits
		{"arn:aws:iam::123456789012:user/NotARole", true}, // user, not role
		{"", true},
		{"not-an-arn", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.arn, func(t *testing.T) {
			t.Parallel()
			err := ValidateRoleARN(tt.arn)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewAWSConfig_InvalidRoleARN(t *testing.T) {
	t.Parallel()
	_, err := NewAWSConfig(context.Background(), ConfigOptions{
		Region:  "eu-west-1",
		RoleARN: "invalid-arn",
	})
	assert.Error(t, err)
}
