// Package polytable builds the reduction tables behind the Rabin rolling hash.
// A table depends only on the fixed modulus polynomial and the window size,
// so tables are computed once and shared read-only between chunkers.
package polytable

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"sync"
)

const (
	// Polynomial is the GF(2) modulus of the rolling hash.
	Polynomial uint64 = 0xbfe6b8a5bf378d83

	// DefaultWindowSize is the window size the precomputed table is built for.
	DefaultWindowSize = 64
)

// ErrInvalidWindowSize is returned for window sizes below one byte.
var ErrInvalidWindowSize = errors.New("window size must be greater than 0")

// Table holds the per-byte reduction terms of the rolling hash.
//
// Shift[b] cancels byte b when it falls off the top of the hash register on
// an 8-bit left shift. Drop[b] cancels byte b once it has left the trailing
// edge of the window.
type Table struct {
	Shift [256]uint64
	Drop  [256]uint64
}

var cache sync.Map // window size -> *Table

// Degree returns the bit length of Polynomial.
func Degree() uint {
	return uint(bits.Len64(Polynomial))
}

// New returns the table for windowSize. The default window size is served
// from the embedded constant table, others are computed on first use and
// cached.
func New(windowSize int) (*Table, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWindowSize, windowSize)
	}
	if windowSize == DefaultWindowSize {
		return Precomputed(), nil
	}
	if t, ok := cache.Load(windowSize); ok {
		return t.(*Table), nil
	}
	t, _ := cache.LoadOrStore(windowSize, Compute(windowSize))
	return t.(*Table), nil
}

// Precomputed returns the embedded table for DefaultWindowSize.
func Precomputed() *Table {
	return &precomputed
}

// Compute derives the table for windowSize. Shift comes from big-integer
// GF(2) division. Drop[b] is b·x^(8·windowSize) mod Polynomial, built from a
// single power of x so the cost grows linearly with the window.
func Compute(windowSize int) *Table {
	var t Table

	modulo := new(big.Int).SetUint64(Polynomial)
	degree := Degree()

	v := new(big.Int)
	for i := range 256 {
		v.SetInt64(int64(i))
		v.Lsh(v, degree-1)
		t.Shift[i] = Reduce(v, modulo) ^ uint64(i)<<(degree-1)
	}

	outer := powX(8 * windowSize)
	for i := range 256 {
		t.Drop[i] = mulMod(byte(i), outer)
	}
	return &t
}

// powX returns x^n mod Polynomial.
func powX(n int) uint64 {
	r := uint64(1)
	for range n {
		r = mulX(r)
	}
	return r
}

// mulX multiplies a remainder by x and reduces it again.
func mulX(r uint64) uint64 {
	r <<= 1
	if r&(1<<(Degree()-1)) != 0 {
		r ^= Polynomial
	}
	return r
}

// mulMod returns b·r mod Polynomial for a remainder r.
func mulMod(b byte, r uint64) uint64 {
	var res uint64
	for bit := 7; bit >= 0; bit-- {
		res = mulX(res)
		if b>>bit&1 == 1 {
			res ^= r
		}
	}
	return res
}

// Reduce returns value mod modulo over GF(2), truncated to 64 bits.
// value is not modified.
func Reduce(value, modulo *big.Int) uint64 {
	modBits := modulo.BitLen()
	if value.BitLen() < modBits {
		return truncate(value)
	}

	result := new(big.Int).Set(value)
	shifted := new(big.Int)
	for i := result.BitLen() - modBits; i >= 0; i-- {
		if result.Bit(modBits+i-1) == 1 {
			result.Xor(result, shifted.Lsh(modulo, uint(i)))
		}
	}
	return truncate(result)
}

func truncate(v *big.Int) uint64 {
	words := v.Bits()
	if len(words) == 0 {
		return 0
	}
	if bits.UintSize == 64 {
		return uint64(words[0])
	}
	lo := uint64(words[0])
	if len(words) > 1 {
		lo |= uint64(words[1]) << 32
	}
	return lo
}
