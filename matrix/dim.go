// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/fixmat/kernel"

// MaxElements is the storage capacity of every Matrix. A shape R×C is valid
// when both extents are positive and R*C <= MaxElements.
const MaxElements = kernel.MaxElements

// Dim is a compile-time extent. Implementations are zero-size marker types
// whose Len is a constant; the predeclared D1…D12 cover the common cases and
// callers may declare their own (e.g. a 16-row marker for a 16×4 matrix).
type Dim interface {
	Len() int
}

// Predeclared extents.
type (
	D1  struct{}
	D2  struct{}
	D3  struct{}
	D4  struct{}
	D5  struct{}
	D6  struct{}
	D7  struct{}
	D8  struct{}
	D9  struct{}
	D10 struct{}
	D11 struct{}
	D12 struct{}
)

func (D1) Len() int { return 1 }
func (D2) Len() int { return 2 }
func (D3) Len() int { return 3 }
func (D4) Len() int { return 4 }
func (D5) Len() int { return 5 }
func (D6) Len() int { return 6 }
func (D7) Len() int { return 7 }
func (D8) Len() int { return 8 }
func (D9) Len() int { return 9 }
func (D10) Len() int { return 10 }
func (D11) Len() int { return 11 }
func (D12) Len() int { return 12 }
