package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/video-processor/internal/platform"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that ffmpeg and ffprobe can be found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := ctx.ensureConfig(cmd.Context())
			if err != nil {
				return err
			}

			statuses := platform.CheckBinaries(platform.TranscodeRequirements(profile.FFmpegPath, profile.FFprobePath))
			rows := make([][]string, 0, len(statuses))
			for _, s := range statuses {
				state := "ok"
				detail := s.Path
				if !s.Available {
					state = "missing"
					if s.Optional {
						state = "missing (optional)"
					}
					detail = s.Detail
				}
				rows = append(rows, []string{s.Name, s.Command, state, detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Binary", "Command", "Status", "Detail"}, rows, nil))

			if missing := platform.MissingRequired(statuses); len(missing) > 0 {
				names := make([]string, 0, len(missing))
				for _, s := range missing {
					names = append(names, s.Name)
				}
				return fmt.Errorf("missing required binaries: %s", strings.Join(names, ", "))
			}
			return nil
		},
	}
}
