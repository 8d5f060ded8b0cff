// Package logging builds the structured loggers used by the GUI and the CLI.
//
// Records go to stdout as console text or JSON and can be teed into extra
// handlers, such as the log panel of the main window.
package logging
