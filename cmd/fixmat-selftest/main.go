// SPDX-License-Identifier: MIT

// Command fixmat-selftest runs the matrix reference fixtures against a
// kernel backend and exits non-zero when any check fails.
package main

import (
	"flag"
	"os"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pbnjay/memory"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/fixmat/kernel"
	"github.com/katalvlaran/fixmat/selftest"
)

var (
	backendName = flag.String("backend", "", "Backend to test: "+strings.Join(kernel.Names(), ", ")+" (overrides "+selftest.EnvBackend+").")
	epsilon     = flag.Float64("epsilon", -1, "Per-element comparison tolerance (overrides "+selftest.EnvEpsilon+").")
	tolerance   = flag.Float64("tolerance", -1, "Software backend singular pivot tolerance (overrides "+selftest.EnvTolerance+").")
	logLevel    = flag.String("log-level", "", "Log level (overrides "+selftest.EnvLogLevel+").")
	logJSON     = flag.Bool("json", false, "Log as JSON.")
	runAll      = flag.Bool("all", false, "Test every registered backend instead of one.")
)

func main() {
	flag.Parse()

	cfg, err := selftest.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}
	applyFlags(&cfg)

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("invalid log level %q: %v", cfg.LogLevel, err)
	}
	log.SetLevel(level)
	if *logJSON {
		log.SetFormatter(&log.JSONFormatter{})
	}

	log.WithFields(log.Fields{
		"arch":        runtime.GOARCH,
		"cpu":         kernel.Features(),
		"simd_fma":    kernel.HasSIMDFMA(),
		"native_blas": kernel.HasNativeBLAS(),
		"memory":      humanize.Bytes(memory.TotalMemory()),
	}).Info("host")

	var names []string
	if *runAll {
		for _, n := range kernel.Names() {
			if n != kernel.NameAuto {
				names = append(names, n)
			}
		}
	} else {
		names = []string{cfg.Backend}
	}

	ok := true
	for _, n := range names {
		c := cfg
		c.Backend = n
		b, err := c.NewBackend()
		if err != nil {
			log.Fatalf("%v (available: %s)", err, strings.Join(kernel.Names(), ", "))
		}
		if !report(selftest.Run(b, cfg.Epsilon)) {
			ok = false
		}
	}

	if !ok {
		os.Exit(1)
	}
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(cfg *selftest.Config) {
	if *backendName != "" {
		cfg.Backend = *backendName
	}
	if *epsilon >= 0 {
		cfg.Epsilon = float32(*epsilon)
	}
	if *tolerance >= 0 {
		if *tolerance >= 1 {
			log.Fatalf("tolerance must be in [0, 1), got %v", *tolerance)
		}
		cfg.Tolerance = *tolerance
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
}

// report logs one line per check and a summary, and returns rep.Passed().
func report(rep selftest.Report) bool {
	logger := log.WithFields(log.Fields{
		"backend": rep.Backend,
		"epsilon": rep.Epsilon,
	})

	for _, res := range rep.Results {
		entry := logger.WithFields(log.Fields{
			"check":   res.Name,
			"elapsed": res.Elapsed,
		})
		if res.Passed() {
			entry.Debug("pass")
		} else {
			entry.WithError(res.Err).Error("FAIL")
		}
	}

	failed := len(rep.Failed())
	summary := logger.WithFields(log.Fields{
		"checks": len(rep.Results),
		"failed": failed,
	})
	if failed > 0 {
		summary.Error("self test failed")
		return false
	}
	summary.Info("self test passed")

	return true
}
