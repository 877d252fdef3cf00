package logging

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// DefaultLevel keeps the prompt quiet unless something is wrong
const DefaultLevel = "warn"

// Setup points the standard logrus logger at w and applies level. Output
// must never go to stdout, which carries the prompt itself.
func Setup(w io.Writer, level string) error {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}

	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
		DisableQuote:     true,
	})
	return nil
}
