package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// .env is optional; the environment always takes precedence
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lazytab",
		Short: "Inspect delimited text files with list-encoded columns",
		Long: `Inspect delimited text files (CSV, TSV, ...) whose cells may hold whole lists, such as [a,b].

Defaults for loader flags are read from the environment (or a .env file):
- LAZYTAB_SEP
- LAZYTAB_LIST_SEP
- LAZYTAB_NULL (comma-separated null markers)
- LAZYTAB_WORKERS

Example: lazytab head tags.psv --sep '|' --schema 'id:int64,tags:list<string>' -n 5`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(
		newHeadCmd(),
		newCountCmd(),
		newDescribeCmd(),
	)
	return rootCmd
}
