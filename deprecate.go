package vdom

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Deprecation signals are advisory: they never change return values and are
// delivered through a replaceable handler so embedders can route them into
// their own logging.

var (
	deprecateMu      sync.RWMutex
	deprecateHandler = defaultDeprecationHandler()
)

func defaultDeprecationHandler() func(string) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().
		Timestamp().
		Str("component", "vdom").
		Logger()
	return func(msg string) {
		logger.Warn().Str("kind", "deprecation").Msg(msg)
	}
}

// SetDeprecationHandler replaces the deprecation sink. Passing nil restores
// the default stderr logger; a no-op func silences signals entirely.
func SetDeprecationHandler(h func(msg string)) {
	deprecateMu.Lock()
	if h == nil {
		deprecateHandler = defaultDeprecationHandler()
	} else {
		deprecateHandler = h
	}
	deprecateMu.Unlock()
}

func deprecated(msg string) {
	deprecateMu.RLock()
	h := deprecateHandler
	deprecateMu.RUnlock()
	h(msg)
}
