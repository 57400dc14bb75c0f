package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newHashCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hash KEY...",
		Short: "Print the hash value and bucket of each key",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, _, err := a.cfg.NewTable(a.tableLogger())
			if err != nil {
				return err
			}
			defer table.Destroy()
			hashFunc, err := a.cfg.HashFunc()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tHASH\tBUCKET")
			for _, key := range args {
				bucket, err := table.BucketIndex(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%q\t%d\t%d\n", key, hashFunc(key), bucket)
			}
			return w.Flush()
		},
	}
}
