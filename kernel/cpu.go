// SPDX-License-Identifier: MIT

package kernel

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// HasSIMDFMA reports whether the CPU offers vector fused multiply-add:
// AVX2+FMA on x86, ASIMD on arm64. Other architectures report false.
func HasSIMDFMA() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpu.X86.HasAVX2 && cpu.X86.HasFMA
	case "arm64":
		return cpu.ARM64.HasASIMD
	default:
		return false
	}
}

// Features lists the SIMD features relevant to backend selection, joined by
// "+", or "none".
func Features() string {
	var fs []string
	switch runtime.GOARCH {
	case "amd64", "386":
		if cpu.X86.HasSSE2 {
			fs = append(fs, "sse2")
		}
		if cpu.X86.HasAVX2 {
			fs = append(fs, "avx2")
		}
		if cpu.X86.HasFMA {
			fs = append(fs, "fma")
		}
		if cpu.X86.HasAVX512F {
			fs = append(fs, "avx512f")
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			fs = append(fs, "asimd")
		}
		if cpu.ARM64.HasSVE {
			fs = append(fs, "sve")
		}
	}
	if len(fs) == 0 {
		return "none"
	}

	return strings.Join(fs, "+")
}
