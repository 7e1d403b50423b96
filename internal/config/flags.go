package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagSeed     = flag.Int64("seed", 0, "World seed")
	flagPreset   = flag.String("preset", "", "World generator preset")
	flagRadius   = flag.Int("radius", 0, "Streaming radius in chunks")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagHeadless = flag.Bool("headless", false, "Run without a window")
	flagTicks    = flag.Int("ticks", 0, "Ticks to run in headless mode")
	flagWrite    = flag.String("write-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the -write-config target, or "" when not requested.
func WriteConfigPath() string {
	return *flagWrite
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	// Zero is a valid seed, so only an explicitly passed -seed overrides.
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.World.Seed = *flagSeed
		}
	})
	if *flagPreset != "" {
		cfg.World.Preset = *flagPreset
	}
	if *flagRadius > 0 {
		cfg.World.Radius = *flagRadius
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagHeadless {
		cfg.Graphics.Headless = true
	}
	if *flagTicks > 0 {
		cfg.Graphics.Ticks = *flagTicks
	}
}
