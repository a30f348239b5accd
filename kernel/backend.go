// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"sort"
	"sync"
)

// Backend performs bulk arithmetic on column-major descriptors.
// Implementations validate descriptors first and return ErrShape on misuse.
// Descriptors passed to one call must not alias each other.
type Backend interface {
	// Name identifies the backend in logs and in Lookup.
	Name() string

	// Add computes out[k] = lhs[k] + rhs[k] for equal shapes.
	Add(lhs, rhs, out Descriptor) error

	// Sub computes out[k] = lhs[k] - rhs[k] for equal shapes.
	Sub(lhs, rhs, out Descriptor) error

	// Mul computes the (m×n)·(n×p) product into out (m×p).
	Mul(lhs, rhs, out Descriptor) error

	// Transpose writes inᵀ (n×m) into out.
	Transpose(in, out Descriptor) error

	// Inverse writes in⁻¹ into out, or returns ErrSingular.
	Inverse(in, out Descriptor) error
}

// Backend names understood by Lookup.
const (
	NameSoftware = "software"
	NameBLAS32   = "blas32"
	NameAuto     = "auto"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]func() Backend{
		NameSoftware: func() Backend { return NewSoftware() },
		NameBLAS32:   func() Backend { return NewBLAS32() },
	}
)

// Register makes a backend factory available to Lookup under name.
// It panics if name is empty, reserved, or already registered, or if factory is nil.
func Register(name string, factory func() Backend) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if name == "" || name == NameAuto {
		panic("kernel: Register: invalid backend name " + fmt.Sprintf("%q", name))
	}
	if factory == nil {
		panic("kernel: Register: nil factory for " + name)
	}
	if _, dup := registry[name]; dup {
		panic("kernel: Register: duplicate backend " + name)
	}
	registry[name] = factory
}

// Lookup returns a fresh backend registered under name. NameAuto resolves
// through Auto. Unknown names yield ErrUnknownBackend.
func Lookup(name string) (Backend, error) {
	if name == NameAuto {
		return Auto(), nil
	}

	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%s(%q): %w", opLookup, name, ErrUnknownBackend)
	}

	return factory(), nil
}

// Names lists registered backend names in lexical order, followed by NameAuto.
func Names() []string {
	registryMu.RLock()
	names := make([]string, 0, len(registry)+1)
	for name := range registry {
		names = append(names, name)
	}
	registryMu.RUnlock()

	sort.Strings(names)

	return append(names, NameAuto)
}

// Auto returns BLAS32 when blas32.Use has installed a native implementation
// and Software otherwise. gonum's default implementation is pure Go, so on its
// own it gains nothing over Software and its Inverse allocates.
func Auto() Backend {
	if HasNativeBLAS() {
		return NewBLAS32()
	}

	return NewSoftware()
}
