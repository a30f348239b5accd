// SPDX-License-Identifier: MIT

package selftest

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/fixmat/kernel"
	"github.com/katalvlaran/fixmat/matrix"
)

// Environment variables read by LoadConfig.
const (
	EnvBackend   = "FIXMAT_BACKEND"
	EnvEpsilon   = "FIXMAT_EPSILON"
	EnvLogLevel  = "FIXMAT_LOG_LEVEL"
	EnvTolerance = "FIXMAT_TOLERANCE"
)

// envSearchDepth bounds the upward .env lookup.
const envSearchDepth = 5

// ErrConfig is wrapped by every LoadConfig validation error.
var ErrConfig = errors.New("selftest: invalid configuration")

// Config drives a self-test run.
type Config struct {
	// Backend is a kernel registry name or "auto".
	Backend string
	// Epsilon is the per-element comparison tolerance.
	Epsilon float32
	// LogLevel is a logrus level name.
	LogLevel string
	// Tolerance is the relative pivot threshold passed to the software backend.
	Tolerance float64
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Backend:   kernel.NameAuto,
		Epsilon:   matrix.DefaultEpsilon,
		LogLevel:  "info",
		Tolerance: kernel.DefaultSingularTolerance,
	}
}

// LoadConfig reads the FIXMAT_* variables on top of DefaultConfig, after
// loading the nearest .env file from the working directory or one of its
// parents. Variables already present in the environment win over .env.
// A missing .env is not an error; an unreadable or malformed one is.
func LoadConfig() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return DefaultConfig(), fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return configFromEnv(os.Getenv)
}

// configFromEnv builds a Config from a lookup function.
func configFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := getenv(EnvBackend); v != "" {
		cfg.Backend = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(EnvEpsilon); v != "" {
		eps, err := strconv.ParseFloat(v, 32)
		if err != nil || eps < 0 || math.IsInf(eps, 0) || math.IsNaN(eps) {
			return cfg, fmt.Errorf("%s=%q: %w", EnvEpsilon, v, ErrConfig)
		}
		cfg.Epsilon = float32(eps)
	}
	if v := getenv(EnvTolerance); v != "" {
		tol, err := strconv.ParseFloat(v, 64)
		if err != nil || tol < 0 || tol >= 1 || math.IsNaN(tol) {
			return cfg, fmt.Errorf("%s=%q: %w", EnvTolerance, v, ErrConfig)
		}
		cfg.Tolerance = tol
	}

	return cfg, nil
}

// NewBackend resolves cfg.Backend. The software backend receives the
// configured singular tolerance; "auto" picks by CPU features.
func (cfg Config) NewBackend() (kernel.Backend, error) {
	name := cfg.Backend
	if name == kernel.NameAuto {
		name = kernel.Auto().Name()
	}
	if name == kernel.NameSoftware {
		return kernel.NewSoftware(kernel.WithSingularTolerance(cfg.Tolerance)), nil
	}

	return kernel.Lookup(name)
}

// loadEnvFile walks up from the working directory looking for a .env file.
func loadEnvFile() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	for i := 0; i < envSearchDepth; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			if err = godotenv.Load(envPath); err != nil {
				return fmt.Errorf("%s: %w", envPath, err)
			}

			return nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil
}
