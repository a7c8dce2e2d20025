package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/cdg-client/cmd/cdg/commands"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "cdg",
	Short: "Congress.gov API v3 CLI",
	Long: `A command-line interface for the Congress.gov API v3.

This CLI gives access to bills, laws, amendments, members, committees,
nominations, treaties and every other resource the API publishes. An
api.data.gov key is required; set it with "cdg config set api_key KEY",
the CDG_API_KEY environment variable, a .env file or --api-key.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.cdg/config.yml)")
	rootCmd.PersistentFlags().StringP("api-key", "k", "", "api.data.gov API key")
	rootCmd.PersistentFlags().String("base-url", "", "API root (default https://api.congress.gov/v3/)")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().Bool("pretty", false, "indent JSON output (default when writing to a terminal)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log requests and responses to stderr")

	// Bind flags to viper
	_ = viper.BindPFlag(commands.KeyConfig, rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag(commands.KeyAPIKey, rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag(commands.KeyBaseURL, rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag(commands.KeyOutput, rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag(commands.KeyPretty, rootCmd.PersistentFlags().Lookup("pretty"))
	_ = viper.BindPFlag(commands.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))

	commands.UserAgent = "cdg-cli/" + version

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewBillsCommand())
	rootCmd.AddCommand(commands.NewLawsCommand())
	rootCmd.AddCommand(commands.NewAmendmentsCommand())
	rootCmd.AddCommand(commands.NewMembersCommand())
	rootCmd.AddCommand(commands.NewCongressCommand())
	rootCmd.AddCommand(commands.NewCommitteesCommand())
	rootCmd.AddCommand(commands.NewNominationsCommand())
	rootCmd.AddCommand(commands.NewTreatiesCommand())
	rootCmd.AddCommand(commands.NewGetCommand())
	rootCmd.AddCommand(commands.NewPathsCommand())
}

func initConfig() {
	// Values already in the environment win over .env.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	cfgFile := viper.GetString(commands.KeyConfig)

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.cdg/config.yml
		viper.AddConfigPath(filepath.Join(home, ".cdg"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// CDG_API_KEY, CDG_BASE_URL, CDG_OUTPUT, ...
	viper.SetEnvPrefix("CDG")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool(commands.KeyVerbose) {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
