package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openshift/net-sriov-tools/pkg/sriov/linkstate"
)

func (a *app) stateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "state <interface> <vf> <" + strings.Join(linkstate.Names(), "|") + ">",
		Short: "Set the link state of a VF",
		Args:  cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			name := args[0]
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid vf index %q", args[1])
			}

			state, err := linkstate.Parse(args[2])
			if err != nil {
				return err
			}

			err = a.nics.SetVfState(name, id, state)
			if err != nil {
				report(c, err)
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "VF %d of interface %s set to %s\n", id, name, state)

			return nil
		},
	}
}
