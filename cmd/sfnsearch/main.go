// Command sfnsearch searches AWS Step Functions execution history and prints
// matching executions with their inputs pretty-printed.
//
// Usage:
//
//	sfnsearch --hours 6 --region eu-west-1 --state-machine ARN [--status S] [--name N] [--key-contains K]
//	sfnsearch machines --region eu-west-1
package main

import (
	"os"

	"github.com/jj-aily/aws-sf-log-searcher/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
