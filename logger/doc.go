// Package logger provides structured logging on top of zerolog.
//
// A Logger is configured once (level, format, output) and handed to
// components via WithComponent, which tags every event with the
// component name. The console format renders compact human-readable
// lines for interactive runs; the json format emits raw zerolog for
// machine consumption.
package logger
