package types

// ExtractConfig holds settings for procedure extraction.
type ExtractConfig struct {
	// TableLookback is the number of rows scanned above a table-mode
	// procedure for a section header (default 5).
	TableLookback int `json:"table_lookback" yaml:"table_lookback"`

	// InlineLookback is the number of rows scanned above an inline-mode
	// procedure for a section header (default 3).
	InlineLookback int `json:"inline_lookback" yaml:"inline_lookback"`
}

// RegistryDriver selects the durable store backing the identifier registry.
type RegistryDriver string

const (
	DriverFile   RegistryDriver = "file"
	DriverSQLite RegistryDriver = "sqlite"
)

// RegistryConfig holds settings for the identifier registry.
type RegistryConfig struct {
	// Path is the durable store location: a JSON document for the file
	// driver, a database file for the sqlite driver.
	Path string `json:"path" yaml:"path"`

	// Driver selects the storage backend: file or sqlite.
	Driver RegistryDriver `json:"driver" yaml:"driver"`
}

// OutputConfig holds settings for form generation.
type OutputConfig struct {
	// OutputDir is the directory the four form tables are written to.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// User is recorded as the form creator in the head table.
	User string `json:"user" yaml:"user"`
}

// ToolConfig groups all stage configurations for the CLI.
type ToolConfig struct {
	Extract  ExtractConfig  `json:"extract" yaml:"extract"`
	Registry RegistryConfig `json:"registry" yaml:"registry"`
	Output   OutputConfig   `json:"output" yaml:"output"`
}
