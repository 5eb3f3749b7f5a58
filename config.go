package fp64set

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-serializable subset of a Set's construction
// parameters — the "configuration enumerated" in spec.md §6. It mirrors the
// shape of rishabhverma17-HyperCache/pkg/config.Config: a small struct with
// yaml tags, loaded with gopkg.in/yaml.v3 and a LoadConfig helper. The
// Allocator collaborator is deliberately not part of Config: it's a Go
// value, not data, and is supplied via WithAllocator when it matters (tests
// simulating ENOMEM).
type Config struct {
	// LogSize is the initial log2 bucket count. New raises values below 4 to
	// 4 and rejects values above 32 with ErrTooBig.
	LogSize int `yaml:"log_size"`
	// SIMD selects the membership-probe capability axis: "auto" (detect via
	// golang.org/x/sys/cpu), "on", or "off". Empty defaults to "auto".
	SIMD string `yaml:"simd"`
}

func (c Config) simdOrDefault() string {
	if c.SIMD == "" {
		return "auto"
	}
	return c.SIMD
}

// LoadConfig reads a YAML-encoded Config from r.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("fp64set: decode config: %w", err)
	}
	return cfg, nil
}
