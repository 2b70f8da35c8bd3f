/*
Copyright © 2026 Sysvitals Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/sysvitals/eventscope/pkg/category"
)

func categoriesCmd() *cli.Command {
	return &cli.Command{
		Name:    "categories",
		Aliases: []string{"cat"},
		Usage:   "List the event categories and how each is retrieved",
		Action: func(_ context.Context, cmd *cli.Command) error {
			w := tabwriter.NewWriter(cmd.Root().Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tSTRATEGY\tLOG\tEVENT IDS")
			for _, d := range category.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					d.Name, d.Strategy, orDash(d.LogName), formatIDs(d.EventIDs))
			}
			return w.Flush()
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatIDs(ids []uint32) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ",")
}
