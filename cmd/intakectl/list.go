package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List uploaded files at the destination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, closeFn, err := pipeline(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			files, err := service.List(cmd.Context(), destinationFlag, subfolderFlag)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tMODIFIED")
			for _, f := range files {
				fmt.Fprintf(w, "%s\t%d\t%s\n", f.Name, f.SizeBytes, f.ModifiedAt.Format(time.RFC3339))
			}
			return w.Flush()
		},
	}
}
