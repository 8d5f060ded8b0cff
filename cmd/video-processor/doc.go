// Command video-processor opens the transcoding window, or with a
// subcommand transcodes headless, prints the ffmpeg command for a set of
// parameters, or checks that ffmpeg and ffprobe are installed.
package main
