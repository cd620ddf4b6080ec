// Package aws provides shared AWS configuration and authentication helpers.
package aws

import (
	"context"
	"fmt"
	"regexp"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

var roleARNRe = regexp.MustCompile(`^arn:aws:iam::\d{12}:role/.+$`)

// ValidateRoleARN checks that the ARN looks like a valid IAM role ARN.
func ValidateRoleARN(arn string) error {
	if !roleARNRe.MatchString(arn) {
		return fmt.Errorf("invalid IAM role ARN: %q", arn)
	}
	return nil
}

// ConfigOptions selects how the ambient credential chain is resolved.
type ConfigOptions struct {
	// Region is the region API calls are made against.
	Region string
	// SSORegion, when set, is used while resolving SSO credentials. The
	// returned config still targets Region.
	SSORegion string
	// Profile is an optional shared-config profile name.
	Profile string
	// RoleARN, when set, layers an assumed role on top of the base
	// credentials.
	RoleARN string
}

// NewAWSConfig creates an aws.Config from the ambient credential chain
// (environment keys, shared config, SSO) per opts.
func NewAWSConfig(ctx context.Context, opts ConfigOptions) (aws.Config, error) {
	loadRegion := opts.Region
	if opts.SSORegion != "" {
		loadRegion = opts.SSORegion
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(loadRegion),
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(opts.Profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("aws auth: load config: %w", err)
	}

	if opts.RoleARN != "" {
		if err := ValidateRoleARN(opts.RoleARN); err != nil {
			return aws.Config{}, fmt.Errorf("aws auth: %w", err)
		}
		stsClient := sts.NewFromConfig(cfg)
		cfg.Credentials = stscreds.NewAssumeRoleProvider(stsClient, opts.RoleARN)
	}

	// Credentials may have been resolved against the SSO region; API calls
	// always go to the requested one.
	cfg.Region = opts.Region

	return cfg, nil
}

// CallerIdentity returns the ARN of the identity the config resolves to.
// Used to surface which principal a search runs as before any listing call.
func CallerIdentity(ctx context.Context, cfg aws.Config) (string, error) {
	out, err := sts.NewFromConfig(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("aws auth: caller identity: %w", err)
	}
	return aws.ToString(out.Arn), nil
}
