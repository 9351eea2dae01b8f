package cli

import (
	"github.com/spf13/cobra"

	"github.com/openshift/net-sriov-tools/pkg/output"
)

func (a *app) listCommand() *cobra.Command {
	format := output.Table

	cmd := &cobra.Command{
		Use:   "list [interface]",
		Short: "List SR-IOV capable network interfaces, or the VFs of one interface",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 1 {
				vfs, err := a.nics.VFs(args[0])
				if err != nil {
					report(c, err)
					return err
				}

				return output.VFs(c.OutOrStdout(), format, vfs)
			}

			// An unreadable interface directory still renders an empty listing.
			pfs, err := a.nics.PFs()
			if err != nil {
				report(c, err)
			}

			if rerr := output.PFs(c.OutOrStdout(), format, pfs); rerr != nil {
				return rerr
			}

			return err
		},
	}

	cmd.Flags().VarP(output.NewFormatFlag(&format), "output", "o", "output format: table or json")

	return cmd
}
