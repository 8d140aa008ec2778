// types.go
package config

// Raw config loaded from YAML, environment or flags. nil/empty means "not set".
type RawConfig struct {
	Seed  *uint64 `yaml:"seed,omitempty"`
	Count *int    `yaml:"count,omitempty"`
	// 32 or 64
	Width *int `yaml:"width,omitempty"`
	// >0 switches to byte output
	Bytes *int `yaml:"bytes,omitempty"`
	// "hex" | "dec" | "raw"
	Format string `yaml:"format,omitempty"`
	// snapshot file to resume from and save to
	State    string `yaml:"state,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// Normalized params used by cmd/wyrand.
type Params struct {
	Seed      *uint64 // nil => seed from entropy (or state file)
	Count     int
	Width     int
	Bytes     int
	Format    string
	StatePath string
	LogLevel  string
}

const (
	FormatHex = "hex"
	FormatDec = "dec"
	FormatRaw = "raw"
)

// Defaults returns the base layer every merge starts from.
func Defaults() RawConfig {
	count, width, bytes := 1, 64, 0
	return RawConfig{
		Count:    &count,
		Width:    &width,
		Bytes:    &bytes,
		Format:   FormatHex,
		LogLevel: "info",
	}
}

// Normalize flattens a merged RawConfig. Unset numeric fields fall back to Defaults.
func Normalize(cfg RawConfig) Params {
	cfg = Merge(Defaults(), cfg)
	return Params{
		Seed:      cfg.Seed,
		Count:     *cfg.Count,
		Width:     *cfg.Width,
		Bytes:     *cfg.Bytes,
		Format:    cfg.Format,
		StatePath: cfg.State,
		LogLevel:  cfg.LogLevel,
	}
}
