package config

// InMemoryPath selects a throwaway in-memory workspace.
const InMemoryPath = ":memory:"

// DefaultDatabasePath is the workspace location, relative to the home directory.
const DefaultDatabasePath = ".victor/workspace.db"

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Workspace.DatabasePath == "" {
		cfg.Workspace.DatabasePath = DefaultDatabasePath
	}
}
