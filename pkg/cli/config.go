package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) saveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save the current configuration of all SR-IOV capable network interfaces",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			results, err := a.store.Save()
			if err != nil {
				report(c, err)
				return err
			}

			var errs []error
			for _, r := range results {
				if r.Err != nil {
					report(c, r.Err)
					errs = append(errs, r.Err)
					continue
				}
				fmt.Fprintf(c.OutOrStdout(), "Configuration for interface %s saved to %s (%d VFs)\n", r.Interface, r.Path, r.NumVFs)
			}

			return errors.Join(errs...)
		},
	}
}

func (a *app) loadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Load SR-IOV configurations from the configuration directory and apply them",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			results, err := a.store.Load()
			if err != nil {
				report(c, err)
				return err
			}

			var errs []error
			for _, r := range results {
				if r.Err != nil {
					report(c, r.Err)
					errs = append(errs, r.Err)
					continue
				}
				fmt.Fprintf(c.OutOrStdout(), "Applied configuration for interface %s (%d VFs)\n", r.Interface, r.NumVFs)
			}

			return errors.Join(errs...)
		},
	}
}
