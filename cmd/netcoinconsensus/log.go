package main

import (
	"os"
	"path/filepath"

	"github.com/netcoin-project/netcoind/infrastructure/logger"
	"github.com/pkg/errors"
)

const (
	logFilename    = "netcoinconsensus.log"
	errLogFilename = "netcoinconsensus_err.log"
)

var log = logger.RegisterSubSystem("NTCN")

// initLog starts the logger backend. Without a log directory the logs go
// to stderr only.
func initLog(logDir, logLevel string) error {
	if logDir != "" {
		err := logger.InitLog(filepath.Join(logDir, logFilename), filepath.Join(logDir, errLogFilename))
		if err != nil {
			return err
		}
	} else {
		err := logger.BackendLog.AddLogWriter(os.Stderr, logger.LevelTrace)
		if err != nil {
			return errors.Wrap(err, "error adding stderr to the logger")
		}
		err = logger.BackendLog.Run()
		if err != nil {
			return errors.Wrap(err, "error starting the logger")
		}
		logger.SetLogLevels(logger.LevelInfo)
	}
	return logger.ParseAndSetLogLevels(logLevel)
}
