// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/fixmat/kernel"
)

// Scratch slots of a backendHolder.
const (
	slotLHS = iota
	slotRHS
	slotOut
	numSlots
)

// backendHolder pairs a backend with the buffers its calls run on. Operands
// are copied into scratch and the result is copied out, so descriptors never
// point into caller values and matrices stay off the heap.
type backendHolder struct {
	b kernel.Backend

	mu      sync.Mutex // guards scratch for the duration of one call
	scratch [numSlots][MaxElements]float32
}

var active atomic.Pointer[backendHolder]

func init() {
	active.Store(&backendHolder{b: kernel.NewSoftware()})
}

// Use installs b as the backend for every delegated operation (Add, Sub,
// Mul, Transpose, Inverse) and returns the previous one. A nil b restores a
// default software backend.
//
// Swapping is atomic, but operations already running keep the backend they
// started with. Calls on one backend are serialized; a backend must not call
// back into this package.
func Use(b kernel.Backend) (previous kernel.Backend) {
	if b == nil {
		b = kernel.NewSoftware()
	}

	return active.Swap(&backendHolder{b: b}).b
}

// Backend returns the backend currently installed by Use.
func Backend() kernel.Backend {
	return active.Load().b
}

// acquire returns the active holder with its scratch locked.
func acquire() *backendHolder {
	h := active.Load()
	h.mu.Lock()

	return h
}

// operand copies the first rows*cols values of src into slot and returns a
// descriptor over the copy.
func (h *backendHolder) operand(slot, rows, cols int, src *[MaxElements]float32) kernel.Descriptor {
	n := rows * cols
	copy(h.scratch[slot][:n], src[:n])

	return kernel.Descriptor{Rows: rows, Cols: cols, Data: h.scratch[slot][:n]}
}

// result returns a zeroed rows×cols descriptor over the output slot.
func (h *backendHolder) result(rows, cols int) kernel.Descriptor {
	d := h.scratch[slotOut][:rows*cols]
	clear(d)

	return kernel.Descriptor{Rows: rows, Cols: cols, Data: d}
}

// collect copies the output slot into dst.
func (h *backendHolder) collect(n int, dst *[MaxElements]float32) {
	copy(dst[:n], h.scratch[slotOut][:n])
}

// mustDelegate turns a backend error into a panic carrying ErrBackendFailure.
// Only used where the type system already guarantees valid descriptors, so an
// error means the backend broke its contract.
func mustDelegate(op string, err error) {
	if err != nil {
		panic(matrixErrorf(op, fmt.Errorf("%w: %w", ErrBackendFailure, err)))
	}
}
