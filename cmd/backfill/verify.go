package main

import (
	"fmt"
	"text/tabwriter"

	"farm-records/internal/domain/clients"
	"farm-records/internal/domain/feeds"

	"github.com/spf13/cobra"
)

func newVerifyCmd(open opener) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Print stored records next to their canonical form (read-only)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must be >= 0")
			}
			store, closeFn, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			cs, err := store.Clients().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list clients: %w", err)
			}
			fs, err := store.Feeds().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list feeds: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CLIENT\tCEDULA\tNOMBRE\tNOMBRES\tAPELLIDOS\tCANONICAL")
			for _, c := range head(cs, limit) {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%t\n", c.ID, c.Cedula, c.DisplayName, c.GivenNames, c.Surnames, clients.Reconcile(c) == c)
			}
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "FEED\tDESCRIPCION\tTIPO_COMIDA\tMARCA\tCANONICAL")
			for _, f := range head(fs, limit) {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", f.ID, f.Description, f.FoodType, f.Brand, feeds.PrepareWrite(f) == f)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 5, "records per entity to print (0 = all)")
	return cmd
}

func head[T any](items []T, n int) []T {
	if n == 0 || n >= len(items) {
		return items
	}
	return items[:n]
}
