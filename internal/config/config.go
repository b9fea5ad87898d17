package config

// Config holds all client configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server       ServerConfig       `mapstructure:"server"       validate:"required"`
	Orchestrator OrchestratorConfig `mapstructure:"orchestrator" validate:"required"`
	Watcher      WatcherConfig      `mapstructure:"watcher"      validate:"required"`
}

// ServerConfig contains the status API and logging settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// OrchestratorConfig contains the task orchestration loop settings.
type OrchestratorConfig struct {
	// TickMs is the orchestrator cycle interval in milliseconds.
	TickMs int `mapstructure:"tick_ms" validate:"required,gt=0"`
}

// WatcherConfig contains the foreground focus watcher settings.
type WatcherConfig struct {
	// PollMs is the foreground poll interval in milliseconds.
	PollMs int `mapstructure:"poll_ms" validate:"required,gt=0"`

	// GamePathMarkers are path fragments identifying game executables.
	GamePathMarkers []string `mapstructure:"game_path_markers" validate:"required,min=1"`
}
