// Package platform contains OS integration and external tooling glue:
// selected-file discovery, output path derivation, ffmpeg availability
// checks, and revealing results in the system file manager.
package platform
