package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jj-aily/aws-sf-log-searcher/internal/observability"
)

func newMachinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "machines",
		Short: "List state machines in the account/region",
		RunE: func(cmd *cobra.Command, _ []string) error {
			observability.InitLogger(os.Stderr, logLevel)

			if criteria.Region == "" {
				return fmt.Errorf("--region is required (or set AWS_REGION)")
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			machines, err := client.ListStateMachines(cmd.Context())
			if err != nil {
				return err
			}

			if len(machines) == 0 {
				fmt.Fprintln(os.Stdout, "No state machines found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTYPE\tCREATED\tARN")
			for _, m := range machines {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					m.Name, m.Type, m.CreationDate.UTC().Format(time.RFC3339), m.ARN)
			}
			return w.Flush()
		},
	}
}
