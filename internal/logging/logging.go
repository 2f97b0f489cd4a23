package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// L is the process-wide logger. It writes to stderr so stdout stays free for
// progress lines and --print output.
var L = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "qrkeys",
	Level:  log.InfoLevel,
})

// SetVerbose switches debug output on or off.
func SetVerbose(enabled bool) {
	if enabled {
		L.SetLevel(log.DebugLevel)
		return
	}
	L.SetLevel(log.InfoLevel)
}

func Debugf(format string, v ...interface{}) {
	L.Debugf(format, v...)
}

func Infof(format string, v ...interface{}) {
	L.Infof(format, v...)
}

func Warnf(format string, v ...interface{}) {
	L.Warnf(format, v...)
}
