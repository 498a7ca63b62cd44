package domain

// Config mirrors ~/.textact/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Preferences         Preferences       `yaml:"preferences"`
	Models              []ModelDefinition `yaml:"models"`
	Actions             []Action          `yaml:"actions"`
}

// Preferences captures user level toggles.
type Preferences struct {
	DefaultModel    string `yaml:"default_model"`
	CacheEnabled    bool   `yaml:"cache_enabled"`
	LogBackend      string `yaml:"log_backend"`
	TimeoutSeconds  int    `yaml:"timeout"`
	CopyToClipboard bool   `yaml:"copy_to_clipboard"`
}

// Log backend names accepted by Preferences.LogBackend.
const (
	LogBackendFile   = "file"
	LogBackendSQLite = "sqlite"
)
