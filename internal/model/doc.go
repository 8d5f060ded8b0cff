// Package model defines the domain data shared by the control panel, the
// transcoder and the UI: the parameter snapshot handed to ffmpeg, the audio
// channel modes, and transcode jobs with their status transitions.
package model
