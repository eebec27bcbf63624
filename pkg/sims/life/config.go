package life

import "strconv"

// Speed bounds in milliseconds.
const (
	DefaultSpeedMS = 100
	MinSpeedMS     = 50
	MaxSpeedMS     = 1000
	SpeedStepMS    = 50
)

// DefaultThreshold leaves about 30% of cells alive after random seeding.
const DefaultThreshold = 0.7

// Config holds the tunables of a Life session.
type Config struct {
	SpeedMS   int
	Threshold float64

	// Seed drives random seeding; zero picks a time-based seed.
	Seed int64

	Pattern string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		SpeedMS:   DefaultSpeedMS,
		Threshold: DefaultThreshold,
		Pattern:   "empty",
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.SpeedMS = ClampSpeed(parsed)
		}
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Threshold = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		if _, known := Lookup(v); known {
			c.Pattern = v
		}
	}
	return c
}

// ClampSpeed snaps ms to the nearest multiple of SpeedStepMS inside
// [MinSpeedMS, MaxSpeedMS].
func ClampSpeed(ms int) int {
	if ms < MinSpeedMS {
		return MinSpeedMS
	}
	if ms > MaxSpeedMS {
		return MaxSpeedMS
	}
	return (ms + SpeedStepMS/2) / SpeedStepMS * SpeedStepMS
}
