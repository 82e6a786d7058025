package miischeme

import (
	"io"
	"log"
)

var logger = log.New(io.Discard, "", 0)

// SetLogger sets the logger used to trace environments and evaluation. A nil
// logger disables tracing, which is the default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}
