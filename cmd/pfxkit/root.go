package main

import (
	"fmt"

	"github.com/sensiblebit/pfxkit/internal"
	"github.com/spf13/cobra"
)

var (
	logLevel     string
	password     string
	passwordFile string
	profilesPath string
)

var rootCmd = &cobra.Command{
	Use:   "pfxkit",
	Short: "PKCS#12 archive tool",
	Long:  "Build, open, inspect, and convert PKCS#12 (PFX) archives and Java keystores.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		internal.SetupLogger(logLevel)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVarP(&password, "password", "p", "", "Archive password (prompted for when omitted on a terminal)")
	rootCmd.PersistentFlags().StringVar(&passwordFile, "password-file", "", "File whose first line is the archive password")
	rootCmd.PersistentFlags().StringVar(&profilesPath, "config", "", "YAML file of custom encryption profiles")

	registerCompletion(rootCmd, completionInput{"log-level", fixedCompletion("debug", "info", "warn", "error")})
	registerCompletion(rootCmd, completionInput{"password-file", fileCompletion})
	registerCompletion(rootCmd, completionInput{"config", fileCompletion})

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(scanCmd)
}

// archivePassword resolves the password for one archive. Confirm is set
// when the password will protect a new archive.
func archivePassword(cmd *cobra.Command, confirm bool) (string, error) {
	pw, err := internal.ResolvePassword(internal.PasswordSource{
		Flag:    password,
		FlagSet: cmd.Flags().Changed("password"),
		File:    passwordFile,
		Prompt:  "Archive password",
		Confirm: confirm,
	})
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return pw, nil
}

// loadProfiles reads --config, or returns no custom profiles when unset.
func loadProfiles() (internal.Profiles, error) {
	if profilesPath == "" {
		return nil, nil
	}
	profiles, err := internal.LoadProfiles(profilesPath)
	if err != nil {
		return nil, fmt.Errorf("loading profiles from %s: %w", profilesPath, err)
	}
	return profiles, nil
}
