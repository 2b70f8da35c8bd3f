/*
Copyright © 2026 Sysvitals Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/sysvitals/eventscope/pkg/version"
)

const name = "eventscope"

// rootCmd assembles the base command with all subcommands attached.
func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "OS diagnostic event collection",
		Version:               version.Info(),
		EnableShellCompletion: true,
		Description: `eventscope collects operating-system diagnostic events over a bounded
time window and produces categorized exports plus one aggregate summary
report with threshold-derived recommendations.

collect    - run a collection over the last N hours
categories - list the event categories and how each is retrieved
version    - print build version information`,
		Commands: []*cli.Command{
			collectCmd(),
			categoriesCmd(),
			versionCmd(),
		},
	}
}

// Execute runs the CLI. It is called by main.main() and handles
// SIGINT/SIGTERM by canceling the command context, so a collection in
// flight stops cleanly at the next category boundary.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build version information",
		Action: func(_ context.Context, cmd *cli.Command) error {
			fmt.Fprintf(cmd.Root().Writer, "%s %s\n", name, version.Info())
			return nil
		},
	}
}
