// Package cli implements the sfnsearch command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	awsauth "github.com/jj-aily/aws-sf-log-searcher/internal/connectors/aws"
	"github.com/jj-aily/aws-sf-log-searcher/internal/connectors/aws/sfn"
	"github.com/jj-aily/aws-sf-log-searcher/internal/config"
	"github.com/jj-aily/aws-sf-log-searcher/internal/observability"
	"github.com/jj-aily/aws-sf-log-searcher/internal/ratelimit"
	"github.com/jj-aily/aws-sf-log-searcher/internal/search"
)

var (
	criteria config.Criteria
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "sfnsearch",
	Short: "Search AWS Step Functions execution history by input payload",
	Long: `sfnsearch lists Step Functions executions started within the last N hours
and filters them client-side on the execution input's "name" and "key" fields.
Matching executions are printed with their input pretty-printed.

Credentials come from the ambient AWS chain (environment keys, shared config,
SSO). Use --sso-region when SSO credentials resolve in a different region
than the API calls target.

Examples:
  # All failed executions of one state machine in the last 6 hours
  sfnsearch --hours 6 --region eu-west-1 --status FAILED \
    --state-machine arn:aws:states:eu-west-1:123456789012:stateMachine:dataloader

  # Executions whose input key mentions a dataset, across every state machine
  sfnsearch --hours 24 --region eu-west-1 --key-contains supply_kpi_parquet`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSearch,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&criteria.Region, "region", os.Getenv("AWS_REGION"), "AWS region for API calls (env: AWS_REGION)")
	rootCmd.PersistentFlags().StringVar(&criteria.SSORegion, "sso-region", "", "region used to resolve SSO credentials, if different")
	rootCmd.PersistentFlags().StringVar(&criteria.Profile, "profile", os.Getenv("AWS_PROFILE"), "shared-config profile (env: AWS_PROFILE)")
	rootCmd.PersistentFlags().StringVar(&criteria.RoleARN, "role-arn", "", "IAM role to assume before calling the API")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	rootCmd.Flags().IntVar(&criteria.Hours, "hours", 0, "look back this many hours (required)")
	rootCmd.Flags().StringVar(&criteria.StateMachineARN, "state-machine", "", "state machine ARN (default: search every machine in the region)")
	rootCmd.Flags().StringVar(&criteria.ExactName, "name", "", "exact match on the input's name field")
	rootCmd.Flags().StringVar(&criteria.KeySubstring, "key-contains", "", "substring match on the input's key field")
	rootCmd.Flags().StringVar(&criteria.Status, "status", "", "execution status filter: "+strings.Join(config.StatusValues(), ", "))

	rootCmd.AddCommand(newMachinesCmd())
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func newClient(cmd *cobra.Command) (*sfn.Client, error) {
	ctx := cmd.Context()

	cfg, err := awsauth.NewAWSConfig(ctx, awsauth.ConfigOptions{
		Region:    criteria.Region,
		SSORegion: criteria.SSORegion,
		Profile:   criteria.Profile,
		RoleARN:   criteria.RoleARN,
	})
	if err != nil {
		return nil, err
	}

	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		identity, err := awsauth.CallerIdentity(ctx, cfg)
		if err != nil {
			return nil, err
		}
		slog.Debug("resolved AWS identity", "arn", identity, "region", cfg.Region)
	}

	return sfn.New(cfg, ratelimit.NewServiceLimiter(ratelimit.DefaultServiceRates())), nil
}

func runSearch(cmd *cobra.Command, _ []string) error {
	observability.InitLogger(os.Stderr, logLevel)

	if err := criteria.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	machines := []string{criteria.StateMachineARN}
	if criteria.StateMachineARN == "" {
		listed, err := client.ListStateMachines(ctx)
		if err != nil {
			return err
		}
		machines = machines[:0]
		for _, m := range listed {
			machines = append(machines, m.ARN)
		}
	}

	status := criteria.Status
	if status == "" {
		status = "ALL"
	}
	slog.Info("searching executions",
		"hours", criteria.Hours,
		"status", status,
		"machines", len(machines))
	if criteria.ExactName != "" {
		slog.Info("filtering on input name", "name", criteria.ExactName)
	}
	if criteria.KeySubstring != "" {
		slog.Info("filtering on input key substring", "key_contains", criteria.KeySubstring)
	}

	searcher := search.New(client, criteria)
	printer := search.NewPrinter(os.Stdout)

	for _, machine := range machines {
		matches, err := searcher.Run(ctx, machine)
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			continue
		}

		printer.Header(machine)
		for _, m := range matches {
			if err := printer.Match(m); err != nil {
				return err
			}
		}
	}
	return nil
}
