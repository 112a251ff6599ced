package engine

import (
	"os"
	"strconv"
)

// Env flag names. PortableOnlyEnv follows the cross-library convention for
// disabling accelerated implementations wholesale; PrimedPortableOnlyEnv
// scopes the switch to this engine alone. Either one forces the portable
// backend.
const (
	PortableOnlyEnv       = "PORTABLE_ONLY"
	PrimedPortableOnlyEnv = "PRIMED_PORTABLE_ONLY"
)

// Config captures every knob the dispatcher consults. It is read exactly
// once, at resolution time; environment changes after that have no effect
// within the process.
type Config struct {
	// DisableAccel skips every non-portable candidate regardless of what
	// the probes report.
	DisableAccel bool
}

// ConfigFromEnv reads the two boolean disable flags.
func ConfigFromEnv() Config {
	return Config{
		DisableAccel: envBool(PortableOnlyEnv) || envBool(PrimedPortableOnlyEnv),
	}
}

// envBool treats any set value other than an explicit false reading as on,
// matching the presence-is-enough convention of these switches.
func envBool(name string) bool {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return false
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return true
}
