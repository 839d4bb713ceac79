package config

// File represents the structure of the sniff.yaml configuration file.
type File struct {
	Ignore *[]string  `yaml:"ignore"`
	Engine *EngineDTO `yaml:"engine"`
	Report string     `yaml:"report"`
}

// EngineDTO represents the engine section of the configuration.
type EngineDTO struct {
	Command   []string          `yaml:"command"`
	Args      []string          `yaml:"args"`
	Verbosity string            `yaml:"verbosity"`
	Env       map[string]string `yaml:"env"`
}
