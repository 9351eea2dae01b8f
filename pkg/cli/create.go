package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/vishvananda/netlink"

	"github.com/openshift/net-sriov-tools/pkg/log"
	"github.com/openshift/net-sriov-tools/pkg/sriov"
	"github.com/openshift/net-sriov-tools/pkg/sriov/vf"
	"github.com/openshift/net-sriov-tools/pkg/subscribe"
)

func (a *app) createCommand() *cobra.Command {
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "create <interface> <nums>",
		Short: "Create SR-IOV devices for a network interface",
		Long: `Set the number of VFs of a network interface.

The number must not exceed the VFs supported by the device. When VFs are
already enabled, remove them first by creating 0 VFs.`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			name := args[0]
			num, err := strconv.Atoi(args[1])
			if err != nil || num < 0 {
				return fmt.Errorf("invalid number of VFs %q", args[1])
			}

			// Subscribe before writing so that no link creation is missed.
			var (
				updates <-chan netlink.LinkUpdate
				subErr  error
			)
			ctx := c.Context()
			if wait > 0 && num > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, wait)
				defer cancel()

				updates, subErr = a.subscribe(ctx)
				if subErr != nil {
					log.Log.Error("failed to subscribe to link changes", "error", subErr)
				}
			}

			err = a.nics.Create(name, num)
			if err != nil {
				report(c, err)
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "Created %d SR-IOV devices for interface: %s\n", num, name)

			if subErr != nil {
				err = &sriov.Error{Kind: sriov.ErrUnreadable, Msg: "failed to subscribe to link changes", Err: subErr}
				report(c, err)
				return err
			}

			if updates == nil {
				return nil
			}

			err = subscribe.WaitForLinks(ctx, a.nl, updates, vf.Names(name, num))
			if err != nil {
				err = &sriov.Error{Kind: sriov.ErrUnreadable, Msg: fmt.Sprintf("VFs of interface %s are not ready", name), Err: err}
				report(c, err)
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "VFs of interface %s are ready\n", name)

			return nil
		},
	}

	cmd.Flags().DurationVar(&wait, "wait", 0, "wait up to this long for the VF interfaces to appear (0 disables)")

	return cmd
}
