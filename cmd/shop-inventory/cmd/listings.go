package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/shop-inventory/internal/api/client"
	domain "github.com/donaldgifford/shop-inventory/pkg/types"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Manage marketplace listings",
		Long: "Create draft listings for items, publish them to eBay and withdraw\n" +
			"them again. Publishing commands need the seller's eBay user access\n" +
			"token via --access-token or SHOP_ACCESS_TOKEN.",
	}

	listingsRoot.AddCommand(
		listingsCreateCmd(),
		listingsGetCmd(),
		listingsListCmd(),
		listingsPublishCmd(),
		listingsPublishAllCmd(),
		listingsWithdrawCmd(),
		listingsRemoteCmd(),
	)

	return listingsRoot
}

func listingsCreateCmd() *cobra.Command {
	var marketplace string

	cmd := &cobra.Command{
		Use:   "create <item-id>",
		Short: "Create a draft listing for an item",
		Example: `  shop-inventory listings create 0b8f7c6e-5d4c-4b3a-9f8e-7d6c5b4a3f2e
  shop-inventory listings create 0b8f7c6e-5d4c-4b3a-9f8e-7d6c5b4a3f2e --marketplace ebay`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			l, err := c.CreateListing(context.Background(), args[0], marketplace)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(l)
			}
			return printListingDetail(os.Stdout, l)
		},
	}

	cmd.Flags().StringVar(&marketplace, "marketplace", "", "marketplace internal name (default ebay)")
	return cmd
}

func listingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show listing details",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			l, err := c.GetListing(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(l)
			}
			return printListingDetail(os.Stdout, l)
		},
	}
}

func listingsListCmd() *cobra.Command {
	var (
		status      string
		marketplace string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List listings by status",
		Example: `  shop-inventory listings list
  shop-inventory listings list --status published --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := parseStatusFlag(status)
			if err != nil {
				return err
			}
			c := newClient()
			resp, err := c.ListListings(context.Background(), &apiclient.ListListingsParams{
				Status:      st,
				Marketplace: marketplace,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Listings) == 0 {
				fmt.Println("No listings found.")
				return nil
			}
			return printListingsTable(os.Stdout, resp.Listings)
		},
	}

	cmd.Flags().StringVar(&status, "status", "draft", "listing status (draft, published, hold, fulfilled, cancelled)")
	cmd.Flags().StringVar(&marketplace, "marketplace", "", "marketplace internal name (default ebay)")
	return cmd
}

func listingsPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish <id>",
		Short: "Publish a draft listing on eBay",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.PublishListing(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Listing %s published.\n", args[0])
			return nil
		},
	}
}

func listingsPublishAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish-all",
		Short: "Publish every draft listing on eBay",
		Long: "Publish every draft eBay listing. Listings are processed one at a\n" +
			"time and the command stops at the first failure.",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			if err := c.PublishAll(context.Background(), domain.ListingDraft); err != nil {
				return err
			}
			fmt.Println("Draft listings published.")
			return nil
		},
	}
}

func listingsWithdrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw <id>",
		Short: "Withdraw a published listing from eBay",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.WithdrawListing(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Listing %s withdrawn.\n", args[0])
			return nil
		},
	}
}

func listingsRemoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remote <item-id>",
		Short: "Show the eBay inventory item of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			raw, err := c.GetInventoryItem(context.Background(), args[0])
			if err != nil {
				return err
			}
			return outputRaw(raw)
		},
	}
}

func parseStatusFlag(s string) (domain.ListingStatus, error) {
	for st := domain.ListingDraft; st <= domain.ListingCancelled; st++ {
		if st.String() == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("unknown listing status %q", s)
}
