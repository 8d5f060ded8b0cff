// Package transcode turns a parameter snapshot into an ffmpeg invocation,
// runs it, and tracks running jobs for the GUI and the CLI.
package transcode
