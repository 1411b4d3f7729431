package main

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

var logger = logging.MustGetLogger("stree")

var logFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`,
)

// initLogger directs the log output to w or, if the settings name a file,
// to that file. The returned function closes the file.
func initLogger(w io.Writer, ls LogSettings, verbose bool) (closeFn func() error, err error) {
	closeFn = func() error { return nil }
	if ls.File != "" {
		var f *os.File
		f, err = os.OpenFile(ls.File,
			os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w, closeFn = f, f.Close
	}
	level, err := ls.LogLevel()
	if err != nil {
		closeFn()
		return nil, err
	}
	if verbose {
		level = logging.DEBUG
	}
	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, logFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
	return closeFn, nil
}
