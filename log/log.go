// Package log provides file-backed logging for the TUI. Stdout belongs to
// the rendered interface, so all loggers write to a file in the temp dir.
package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
)

var logFileName = filepath.Join(os.TempDir(), "roomgrid.log")

var (
	InfoLog    *stdlog.Logger
	WarningLog *stdlog.Logger
	ErrorLog   *stdlog.Logger

	logFile *os.File
)

// Loggers start as no-ops so packages may log before Initialize runs
// (config loading in tests, for example).
func init() {
	InfoLog = stdlog.New(io.Discard, "", 0)
	WarningLog = stdlog.New(io.Discard, "", 0)
	ErrorLog = stdlog.New(io.Discard, "", 0)
}

// Initialize opens the log file and sets up the global loggers. Call once
// at startup; pair with Close on exit. If the file cannot be opened the
// loggers discard, the application never fails because of logging.
func Initialize() {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		InfoLog = stdlog.New(io.Discard, "", 0)
		WarningLog = stdlog.New(io.Discard, "", 0)
		ErrorLog = stdlog.New(io.Discard, "", 0)
		return
	}
	logFile = f

	flags := stdlog.Ldate | stdlog.Ltime | stdlog.Lshortfile
	InfoLog = stdlog.New(f, "INFO: ", flags)
	WarningLog = stdlog.New(f, "WARNING: ", flags)
	ErrorLog = stdlog.New(f, "ERROR: ", flags)

	InitDebug()
}

// Close flushes and closes the log file. Prints the log location when
// anything was written so users can find it after the TUI exits.
func Close() {
	CloseDebug()
	if logFile != nil {
		if info, err := logFile.Stat(); err == nil && info.Size() > 0 {
			fmt.Println("wrote logs to " + logFileName)
		}
		_ = logFile.Close()
		logFile = nil
	}
}

// Path returns the log file location.
func Path() string {
	return logFileName
}
