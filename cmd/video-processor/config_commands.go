package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/video-processor/internal/config"
)

// skipConfigLoad marks commands that must run without a readable profile
const skipConfigLoad = "skipConfigLoad"

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Profile utilities",
	}

	configCmd.AddCommand(newConfigInitCommand(ctx))
	configCmd.AddCommand(newConfigValidateCommand(ctx))

	return configCmd
}

func newConfigInitCommand(ctx *commandContext) *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a profile with the built-in defaults",
		Annotations: map[string]string{skipConfigLoad: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				env, err := config.LoadEnv(cmd.Context())
				if err != nil {
					return err
				}
				target = ctx.resolveProfilePath(env)
			}
			if target == "" {
				return fmt.Errorf("determine profile path: no user config directory, use --path")
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("profile already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check profile path: %w", err)
				}
			}

			if err := config.Default().Save(target); err != nil {
				return fmt.Errorf("write profile: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default profile to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the profile (.toml or .yaml)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing profile")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(cmd.Context()); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			path := ctx.profilePath
			if path == "" {
				path = "(none)"
			}
			fmt.Fprintf(out, "Profile path: %s\n", path)
			if _, err := os.Stat(ctx.profilePath); err != nil {
				fmt.Fprintln(out, "Profile file does not exist; defaults were used")
			}
			fmt.Fprintln(out, "Profile valid")
			return nil
		},
	}
}
