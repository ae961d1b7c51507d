// Package engine defines the interface boundary of the adaptive streaming playback engine.
package engine

// OptionSpec describes one entry of the enumerated engine option schema.
type OptionSpec struct {
	// Settable reports whether the engine exposes a setter for the option.
	Settable bool
	// AcceptsArgs reports whether the setter takes a list of arguments
	// rather than a single value.
	AcceptsArgs bool
}

// Options is the enumerated schema of engine options the bridge may forward.
// Names outside this map are reported as non-fatal diagnostics and dropped;
// nothing is probed dynamically.
var Options = map[string]OptionSpec{
	"limitBitrateByPortal":                {Settable: true},
	"usePixelRatioInLimitBitrateByPortal": {Settable: true},
	"fastSwitchEnabled":                   {Settable: true},
	"stableBufferTime":                    {Settable: true},
	"bufferTimeAtTopQuality":              {Settable: true},
	"initialBitrateFor":                   {Settable: true, AcceptsArgs: true},
	"maxBitrateFor":                       {Settable: true, AcceptsArgs: true},
	"initialRepresentationRatioFor":       {Settable: true, AcceptsArgs: true},
	"autoSwitchQualityFor":                {Settable: true, AcceptsArgs: true},

	// Getter-only metrics, enumerated so the diagnostic can tell "no setter"
	// from "no such option".
	"averageThroughput": {},
	"bufferLength":      {},
}

// KnownOption reports whether the name is part of the enumerated option schema.
func KnownOption(name string) bool {
	_, ok := Options[name]
	return ok
}

// OptionNames returns every schema option name, for diagnostics and completion.
func OptionNames() []string {
	names := make([]string, 0, len(Options))
	for name := range Options {
		names = append(names, name)
	}
	return names
}
