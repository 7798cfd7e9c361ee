package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/douglasroos/fcm/pkg/fcm"
)

func newPrioritiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "priorities",
		Short: "List the supported message priorities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, p := range fcm.Priorities() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), p); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
