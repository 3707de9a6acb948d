package state

import (
	"time"

	"go.uber.org/zap"

	"cssfe/parser"
)

// newLocalEnv creates a new LocalEnv instance with default values. Logger and
// parser are replaced once configuration is loaded.
func newLocalEnv() *LocalEnv {
	log := zap.NewNop()
	return &LocalEnv{
		Log:    log,
		Parser: parser.NewParser(log),
		start:  time.Now(),
	}
}

// SetLogger installs program logger and rebuilds everything which depends on it.
func (e *LocalEnv) SetLogger(log *zap.Logger) {
	e.Log = log
	e.Parser = parser.NewParser(log)
}
