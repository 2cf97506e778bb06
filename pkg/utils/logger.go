package utils

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// InitLogger configures the process-wide logger. Verbose switches on
// debug output.
func InitLogger(verbose bool) {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
