package domain

// Config is the resolved sniff configuration.
type Config struct {
	// Ignore lists element tags pruned from the project before any build.
	Ignore []string
	// Engine configures the external build engine.
	Engine EngineConfig
	// Report is an optional path where a JSON report is written.
	Report string
}

// EngineConfig configures how the external build engine is invoked.
type EngineConfig struct {
	// Command is the executable and leading arguments, e.g. ["dotnet", "msbuild"].
	Command []string
	// Args are appended after the generated engine arguments.
	Args []string
	// Verbosity is the console logger verbosity passed to the engine.
	Verbosity string
	// Env holds extra environment variables for the engine process.
	Env map[string]string
}

// DefaultConfig returns the configuration used when no sniff.yaml is found.
func DefaultConfig() *Config {
	return &Config{
		Ignore: DefaultIgnoreItems(),
		Engine: EngineConfig{
			Command:   DefaultEngineCommand(),
			Verbosity: DefaultVerbosity,
		},
	}
}
