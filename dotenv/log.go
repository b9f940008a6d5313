package dotenv

import (
	"os"
	"sync/atomic"

	"charm.land/log/v2"
)

var pkgLogger atomic.Pointer[log.Logger]

func init() {
	pkgLogger.Store(log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "dotenv",
		Level:  log.WarnLevel,
	}))
}

// SetLogger replaces the logger used for load diagnostics. Values are never
// logged, only keys and paths.
func SetLogger(l *log.Logger) {
	if l != nil {
		pkgLogger.Store(l)
	}
}

func logger() *log.Logger { return pkgLogger.Load() }
