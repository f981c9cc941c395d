// Package log holds lager helpers shared by the library and the CLI.
package log

import (
	"io"

	"code.cloudfoundry.org/lager"
)

// NullLogger discards everything. The pure library entry points use it so
// callers who do not care about logs never have to build a lager.Logger.
type NullLogger struct{}

func (l *NullLogger) RegisterSink(lager.Sink)                    {}
func (l *NullLogger) Session(string, ...lager.Data) lager.Logger { return l }
func (l *NullLogger) SessionName() string                        { return "" }
func (l *NullLogger) Debug(string, ...lager.Data)                {}
func (l *NullLogger) Info(string, ...lager.Data)                 {}
func (l *NullLogger) Error(string, error, ...lager.Data)         {}
func (l *NullLogger) Fatal(string, error, ...lager.Data)         {}
func (l *NullLogger) WithData(lager.Data) lager.Logger           { return l }

func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

// NewLogger builds a component logger writing to w. Debug output is only
// emitted when debug is set.
func NewLogger(component string, w io.Writer, debug bool) lager.Logger {
	logger := lager.NewLogger(component)

	level := lager.INFO
	if debug {
		level = lager.DEBUG
	}
	logger.RegisterSink(lager.NewWriterSink(w, level))

	return logger
}
