// Package controls implements the immediate-mode control model behind the
// transcode panel: sliders, buttons and radio groups with hit-testing,
// pointer/wheel/keyboard value rules, and the capture state machine that
// decides which control owns the pointer between a press and its release.
//
// The package has no toolkit dependency. Pointer coordinates come in as
// plain values and drawing goes out as a list of DrawOp requests; text
// measurement is supplied by the caller through TextMeasurer.
package controls
