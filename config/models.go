package config

// Config holds the application configuration.
type Config struct {
	ListenAddress  string `mapstructure:"listen_address"`
	APIRoot        string `mapstructure:"api_root"`
	BackendTimeout int    `mapstructure:"backend_timeout"` // seconds
}
