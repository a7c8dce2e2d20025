package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/cdg-client/internal/auth"
	"github.com/fivetwenty-io/cdg-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configDirName  = ".cdg"
	configFileName = "config.yml"
)

// Config represents the CLI configuration file.
type Config struct {
	APIKey          string `json:"api_key,omitempty"           yaml:"api_key,omitempty"`
	BaseURL         string `json:"base_url,omitempty"          yaml:"base_url,omitempty"`
	Output          string `json:"output,omitempty"            yaml:"output,omitempty"`
	Pretty          bool   `json:"pretty,omitempty"            yaml:"pretty,omitempty"`
	RetryMax        int    `json:"retry_max,omitempty"         yaml:"retry_max,omitempty"`
	RequestsPerHour int    `json:"requests_per_hour,omitempty" yaml:"requests_per_hour,omitempty"`
}

// ConfigKeys lists the keys accepted by "config set" and "config unset".
var ConfigKeys = []string{KeyAPIKey, KeyBaseURL, KeyOutput, KeyPretty, KeyRetryMax, KeyRequestsPerHour}

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage the CDG CLI configuration file ($HOME/.cdg/config.yml). Keys: " + strings.Join(ConfigKeys, ", "),
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration from flags, environment and the configuration file. The API key is masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			effective := Config{
				APIKey:          viper.GetString(KeyAPIKey),
				BaseURL:         viper.GetString(KeyBaseURL),
				Output:          viper.GetString(KeyOutput),
				Pretty:          viper.GetBool(KeyPretty),
				RetryMax:        viper.GetInt(KeyRetryMax),
				RequestsPerHour: viper.GetInt(KeyRequestsPerHour),
			}

			if effective.APIKey != "" {
				effective.APIKey = auth.MaskKey(effective.APIKey)
			}

			if handled, err := r.data(effective); handled {
				return err
			}

			path, err := configFilePath()
			if err != nil {
				return err
			}

			return r.table([]string{"Property", "Value"}, [][]string{
				{"Config File", path},
				{"API Key", orNA(effective.APIKey)},
				{"Base URL", orNA(effective.BaseURL)},
				{"Output", orNA(effective.Output)},
				{"Pretty", strconv.FormatBool(effective.Pretty)},
				{"Retry Max", strconv.Itoa(effective.RetryMax)},
				{"Requests Per Hour", strconv.Itoa(effective.RequestsPerHour)},
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "set KEY VALUE",
		Short:   "Set a configuration value",
		Long:    "Set a configuration value in the configuration file. Keys: " + strings.Join(ConfigKeys, ", "),
		Example: "  cdg config set api_key DEMO_KEY\n  cdg config set output json",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := strings.ToLower(args[0]), args[1]

			config, err := loadConfigFile()
			if err != nil {
				return err
			}

			if err := setConfigValue(config, key, value); err != nil {
				return err
			}

			if err := saveConfigFile(config); err != nil {
				return err
			}

			if key == KeyAPIKey {
				value = auth.MaskKey(value)
			}

			return outputConfigUpdateResult(cmd, "Set", key, value)
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(args[0])

			config, err := loadConfigFile()
			if err != nil {
				return err
			}

			if err := unsetConfigValue(config, key); err != nil {
				return err
			}

			if err := saveConfigFile(config); err != nil {
				return err
			}

			return outputConfigUpdateResult(cmd, "Unset", key, "")
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath()
			if err != nil {
				return err
			}

			if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			return outputConfigUpdateResult(cmd, "Cleared", "all configuration", "")
		},
	}
}

// configFilePath resolves --config, then the file viper loaded, then $HOME/.cdg/config.yml.
func configFilePath() (string, error) {
	if path := viper.GetString(KeyConfig); path != "" {
		return path, nil
	}

	if path := viper.ConfigFileUsed(); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, configDirName, configFileName), nil
}

func loadConfigFile() (*Config, error) {
	path, err := configFilePath()
	if err != nil {
		return nil, err
	}

	config := &Config{}

	// #nosec G304 -- the path comes from the user's own flag or home directory
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return config, nil
}

func saveConfigFile(config *Config) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case KeyAPIKey:
		config.APIKey = strings.TrimSpace(value)
	case KeyBaseURL:
		config.BaseURL = strings.TrimSpace(value)
	case KeyOutput:
		format := strings.ToLower(value)
		if format != constants.FormatTable && format != constants.FormatJSON && format != constants.FormatYAML {
			return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, value)
		}

		config.Output = format
	case KeyPretty:
		pretty, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}

		config.Pretty = pretty
	case KeyRetryMax, KeyRequestsPerHour:
		number, err := strconv.Atoi(value)
		if err != nil || number < 0 {
			return fmt.Errorf("%w: %s %q", constants.ErrInvalidNumber, key, value)
		}

		if key == KeyRetryMax {
			config.RetryMax = number
		} else {
			config.RequestsPerHour = number
		}
	default:
		return fmt.Errorf("%w: %s (valid keys: %s)", constants.ErrUnknownConfigKey, key, strings.Join(ConfigKeys, ", "))
	}

	return nil
}

func unsetConfigValue(config *Config, key string) error {
	switch key {
	case KeyAPIKey:
		config.APIKey = ""
	case KeyBaseURL:
		config.BaseURL = ""
	case KeyOutput:
		config.Output = ""
	case KeyPretty:
		config.Pretty = false
	case KeyRetryMax:
		config.RetryMax = 0
	case KeyRequestsPerHour:
		config.RequestsPerHour = 0
	default:
		return fmt.Errorf("%w: %s (valid keys: %s)", constants.ErrUnknownConfigKey, key, strings.Join(ConfigKeys, ", "))
	}

	return nil
}

func outputConfigUpdateResult(cmd *cobra.Command, action, key, value string) error {
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	result := map[string]string{
		"action": action,
		"key":    key,
	}

	if value != "" {
		result["value"] = value
	}

	if handled, err := r.data(result); handled {
		return err
	}

	rows := [][]string{{"Action", action}, {"Key", key}}
	if value != "" {
		rows = append(rows, []string{"Value", value})
	}

	return r.table([]string{"Property", "Value"}, rows)
}
