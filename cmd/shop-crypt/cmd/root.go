// Package cmd implements the shop-crypt commands for sealing and opening
// entries of the secret table.
package cmd

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/shop-inventory/internal/config"
	"github.com/donaldgifford/shop-inventory/internal/secret"
)

var rootCmd = &cobra.Command{
	Use:   "shop-crypt",
	Short: "Seal and open entries of the shop-inventory secret table",
	Long: "shop-crypt encrypts secrets into records for secrets.yaml and decrypts\n" +
		"them again with the master key read from MASTER_SECRET or --key.",
	SilenceUsage: true,
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("key", "", "base64 master key (default $MASTER_SECRET)")
	flags.String("table", "", "secret table file (default: the embedded table)")

	cobra.CheckErr(viper.BindPFlag("key", flags.Lookup("key")))
	cobra.CheckErr(viper.BindPFlag("table", flags.Lookup("table")))
	cobra.CheckErr(viper.BindEnv("key", config.EnvMasterSecret))

	rootCmd.AddCommand(keyCmd())
	rootCmd.AddCommand(encryptCmd())
	rootCmd.AddCommand(decryptCmd())
	rootCmd.AddCommand(listCmd())
}

func masterKey() (string, error) {
	key := viper.GetString("key")
	if key == "" {
		return "", fmt.Errorf("no master key: set %s or pass --key", config.EnvMasterSecret)
	}
	return key, nil
}

func loadTable() (map[string]secret.Record, error) {
	path := viper.GetString("table")
	if path == "" {
		return secret.EmbeddedTable()
	}
	data, err := os.ReadFile(path) //nolint:gosec // operator-supplied path
	if err != nil {
		return nil, fmt.Errorf("reading secret table: %w", err)
	}
	return secret.ParseTable(data)
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the secret names in the table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := loadTable()
			if err != nil {
				return err
			}
			return printNames(cmd.OutOrStdout(), records)
		},
	}
}

func printNames(w io.Writer, records map[string]secret.Record) error {
	for _, name := range slices.Sorted(maps.Keys(records)) {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}
