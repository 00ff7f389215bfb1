// Package cmd implements the shop-inventory commands: the API server,
// database migrations and a client for the running API.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/shop-inventory/internal/api/client"
)

var (
	cfgFile       string
	envFile       string
	clientCfgFile string
	rootCmd       = &cobra.Command{
		Use:   "shop-inventory",
		Short: "Back office for publishing shop items to eBay",
		Long: "shop-inventory serves the back office API that turns draft listings\n" +
			"into live eBay offers, and doubles as a command-line client for it.",
		SilenceUsage: true,
	}
)

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
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "config.yaml", "server config file path")
	flags.StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config")
	flags.StringVar(&clientCfgFile, "client-config", "",
		"client config file (default $HOME/.shop-inventory.yaml)")
	flags.String("server", "http://localhost:8080", "API server URL")
	flags.String("output", "table", "output format (table, json)")
	flags.String("access-token", "", "eBay user access token sent as the session cookie")

	cobra.CheckErr(viper.BindPFlag("server", flags.Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", flags.Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("access_token", flags.Lookup("access-token")))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCommand())
	rootCmd.AddCommand(listingsCmd())
	rootCmd.AddCommand(locationsCmd())
	rootCmd.AddCommand(quotaCmd())
}

func initConfig() {
	if clientCfgFile != "" {
		viper.SetConfigFile(clientCfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".shop-inventory")
	}

	viper.SetEnvPrefix("SHOP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	var opts []apiclient.Option
	if token := viper.GetString("access_token"); token != "" {
		opts = append(opts, apiclient.WithAccessToken(token))
	}
	return apiclient.New(viper.GetString("server"), opts...)
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
