package cli

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// logOutput is where diagnostic logging goes. Tests replace it.
var logOutput io.Writer = os.Stderr

// newLogger returns the diagnostic logger for a run. Verbose runs log at
// debug level, including one entry per graded case.
func newLogger(opts *GlobalOptions) *logrus.Logger {
	level := logrus.WarnLevel
	if opts.Verbose {
		level = logrus.DebugLevel
	}

	log := logrus.New()
	log.SetOutput(logOutput)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableColors:   opts.NoColor,
	})
	return log
}
