package coinselect

import "github.com/btcsuite/btclog"

// log is the package-level logger used throughout coinselect. It is a
// no-op until a caller wires one up with UseLogger, the same
// convention the teacher's subsystems (chanfunding, sweep, ...) use
// for their own btclog.Logger, just collapsed to a single logger since
// this module has one package of interest instead of a whole node's
// worth.
var log = btclog.Disabled

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger btclog.Logger) {
	log = logger
}

// DisableLog disables all library log output. Logging is disabled by
// default until UseLogger is called.
func DisableLog() {
	log = btclog.Disabled
}

// logClosure defers formatting of expensive log arguments until the
// configured log level actually warrants it.
type logClosure func() string

func (c logClosure) String() string {
	return c()
}

func newLogClosure(c func() string) logClosure {
	return logClosure(c)
}
