package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/video-processor/internal/transcode"
)

func newCommandCommand(ctx *commandContext) *cobra.Command {
	var flags parameterFlags
	var quiet bool

	cmd := &cobra.Command{
		Use:   "command",
		Short: "Print the ffmpeg command for the given parameters without running it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := ctx.ensureConfig(cmd.Context())
			if err != nil {
				return err
			}
			params, err := flags.parameters(cmd, profile, ctx.envValue())
			if err != nil {
				return err
			}

			rendered, _, err := transcode.NewRunner(profile.FFmpegPath).Command(params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !quiet {
				fmt.Fprintln(out, renderTable([]string{"Parameter", "Value"}, parameterRows(params), []columnAlignment{alignLeft, alignRight}))
			}
			fmt.Fprintln(out, rendered)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the command line")
	return cmd
}
