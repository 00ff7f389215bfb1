package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func locationsCmd() *cobra.Command {
	locationsRoot := &cobra.Command{
		Use:   "locations",
		Short: "Manage eBay inventory locations",
	}

	locationsRoot.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List the inventory locations known to eBay",
			RunE: func(_ *cobra.Command, _ []string) error {
				raw, err := newClient().ListLocations(context.Background())
				if err != nil {
					return err
				}
				return outputRaw(raw)
			},
		},
		&cobra.Command{
			Use:   "sync",
			Short: "Push every local inventory location to eBay",
			RunE: func(_ *cobra.Command, _ []string) error {
				if err := newClient().SyncLocations(context.Background()); err != nil {
					return err
				}
				fmt.Println("Inventory locations synced.")
				return nil
			},
		},
	)

	return locationsRoot
}
