package main

import "go.uber.org/zap"

var logger = zap.NewNop()

// Logger returns the command's logger instance.
func Logger() *zap.Logger {
	return logger
}

// SetLogger replaces the command's logger. A nil logger restores the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// setupLogger installs a development logger on stderr when verbose is set.
func setupLogger(verbose bool) error {
	if !verbose {
		SetLogger(nil)
		return nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	SetLogger(l)
	return nil
}
