package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/helplane-io/dixa-client/internal/constants"
	"github.com/helplane-io/dixa-client/pkg/dixaclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a Dixa API key",
		Long:  "Validate a Dixa API key and persist it to the CLI configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				fmt.Fprint(os.Stderr, "API key: ")

				keyBytes, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				fmt.Fprintln(os.Stderr)

				apiKey = strings.TrimSpace(string(keyBytes))
			}

			if apiKey == "" {
				return ErrAPIKeyNotConfigured
			}

			baseURL := viper.GetString("api-url")

			client, err := dixaclient.NewWithBaseURL(apiKey, baseURL)
			if err != nil {
				return err
			}

			// Validate the key with a cheap read-only call.
			if _, err := client.Tags().List(context.Background()); err != nil {
				return fmt.Errorf("API key validation failed: %w", err)
			}

			if err := persistCredentials(apiKey, baseURL); err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, "Logged in. API key saved to", configFilePath())

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiKey, "api-key", "k", "", "API key (prompted if not provided)")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := persistCredentials("", viper.GetString("api-url")); err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, "Logged out.")

			return nil
		},
	}
}

func persistCredentials(apiKey, baseURL string) error {
	viper.Set("token", apiKey)
	if baseURL != "" {
		viper.Set("api-url", baseURL)
	} else if viper.GetString("api-url") == "" {
		viper.Set("api-url", constants.DefaultBaseURL)
	}

	if err := viper.WriteConfigAs(configFilePath()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func configFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return constants.ConfigFileName + ".yml"
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName+".yml")
}
