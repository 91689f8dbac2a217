package commit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config carries the construction-time parameters of every scheme. A zero
// field falls back to the value from DefaultConfig when loaded from YAML.
type Config struct {
	// Curve names the prime-order group used by Pedersen and ElGamal.
	Curve string `yaml:"curve"`

	// PairingCurve names the pairing-friendly curve used by Groth.
	PairingCurve string `yaml:"pairing_curve"`

	// GrothN is the fixed vector length shared by Groth keys and messages.
	GrothN int `yaml:"groth_n"`

	Lattice LatticeConfig `yaml:"lattice"`
	BDLOP   BDLOPConfig   `yaml:"bdlop"`
}

// LatticeConfig mirrors the Ajtai parameters.
type LatticeConfig struct {
	N          int     `yaml:"n"`
	M          int     `yaml:"m"`
	Q          uint64  `yaml:"q"`
	Short      float64 `yaml:"short"`
	Sigma      float64 `yaml:"sigma"`
	Norm       string  `yaml:"norm"`
	BasisBound int64   `yaml:"basis_bound"`
}

// BDLOPConfig mirrors the BDLOP parameters.
type BDLOPConfig struct {
	N    int    `yaml:"n"`
	K    int    `yaml:"k"`
	L    int    `yaml:"l"`
	Q    uint64 `yaml:"q"`
	Beta uint64 `yaml:"beta"`
}

// DefaultConfig returns parameters suitable for tests and the CLI.
func DefaultConfig() Config {
	return Config{
		Curve:        "ristretto255",
		PairingCurve: "bn254",
		GrothN:       16,
		Lattice: LatticeConfig{
			N:          16,
			M:          64,
			Q:          655_360_001,
			Short:      4096,
			Sigma:      1.5,
			Norm:       "basis",
			BasisBound: 1,
		},
		BDLOP: BDLOPConfig{
			N:    16,
			K:    64,
			L:    16,
			Q:    655_360_001,
			Beta: 100,
		},
	}
}

// Validate performs structural checks that do not depend on a particular
// scheme package. Curve and norm names are resolved by their consumers.
func (c Config) Validate() error {
	if c.GrothN <= 0 {
		return Errorf("Config.Validate", "groth_n must be positive, got %d: %w", c.GrothN, ErrInvalidParameter)
	}
	l := c.Lattice
	if l.N <= 0 || l.M <= 0 {
		return Errorf("Config.Validate", "lattice dimensions must be positive: %w", ErrInvalidParameter)
	}
	if l.Q < 2 {
		return Errorf("Config.Validate", "lattice modulus too small: %w", ErrInvalidParameter)
	}
	if l.Short <= 0 || l.Sigma <= 0 {
		return Errorf("Config.Validate", "lattice short and sigma must be positive: %w", ErrInvalidParameter)
	}
	b := c.BDLOP
	if b.N <= 0 || b.L <= 0 || b.K <= b.N+b.L {
		return Errorf("Config.Validate", "bdlop requires k > n + l with n, l positive: %w", ErrInvalidParameter)
	}
	if b.Beta == 0 || b.Q < 2 {
		return Errorf("Config.Validate", "bdlop beta and q must be positive: %w", ErrInvalidParameter)
	}
	return nil
}

// LoadConfig reads a YAML configuration file. Fields absent from the file
// keep their DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	absPath, err := SecurePath(path)
	if err != nil {
		return nil, fmt.Errorf("secure path: %w", err)
	}
	data, err := os.ReadFile(absPath) // #nosec G304 -- absPath validated by SecurePath
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration bytes on top of DefaultConfig.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SecurePath validates that a file path doesn't escape the working directory.
// This prevents path traversal attacks when loading user-specified config files.
func SecurePath(path string) (string, error) {
	if path == "" {
		return "", errors.New("empty path")
	}
	clean := filepath.Clean(path)
	absPath, err := filepath.Abs(clean)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}
	base, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	rel, err := filepath.Rel(base, absPath)
	if err != nil {
		return "", fmt.Errorf("relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %q escapes working directory", path)
	}
	return absPath, nil
}
