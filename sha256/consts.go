package sha256

import (
	"math/big"
	"sync"
)

// The round constants are the first 32 bits of the fractional parts of
// the cube roots of the first 64 primes; the initial hash value is the
// first 32 bits of the fractional parts of the square roots of the
// first 8 primes (FIPS 180-4 sections 4.2.2 and 5.3.3). Both tables
// are generated once and read-only afterwards.
var (
	constOnce sync.Once
	_K        [64]uint32
	_H0       [8]uint32
)

// constTables returns the round constant and initial hash value
// tables, generating them on first use. Callers must treat the
// returned arrays as read-only.
func constTables() (*[64]uint32, *[8]uint32) {
	constOnce.Do(func() {
		primes := firstPrimes(len(_K))
		for i, p := range primes {
			_K[i] = fracRootWord(p, 3)
		}
		for i, p := range primes[:len(_H0)] {
			_H0[i] = fracRootWord(p, 2)
		}
	})
	return &_K, &_H0
}

// firstPrimes returns the first n primes by trial division. It only
// ever runs for tiny n on the first digest, so no sieve.
func firstPrimes(n int) []int64 {
	primes := make([]int64, 0, n)
	for c := int64(2); len(primes) < n; c++ {
		prime := true
		for d := int64(2); d*d <= c; d++ {
			if c%d == 0 {
				prime = false
				break
			}
		}
		if prime {
			primes = append(primes, c)
		}
	}
	return primes
}

// fracRootWord computes floor(frac(p^(1/n)) * 2^32) exactly.
// float64 roots are not guaranteed to round the 32nd fractional bit
// correctly, so the root is taken in integer arithmetic instead: the
// low 32 bits of floor((p << 32n)^(1/n)) are exactly the word wanted,
// since the integer part of the root lands in the higher bits.
func fracRootWord(p int64, n int) uint32 {
	shifted := new(big.Int).Lsh(big.NewInt(p), uint(32*n))

	var root *big.Int
	switch n {
	case 2:
		root = new(big.Int).Sqrt(shifted)
	case 3:
		root = cbrt(shifted)
	default:
		panic("sha256: unsupported root exponent")
	}
	return uint32(root.Uint64())
}

// cbrt returns floor(x^(1/3)) for non-negative x by binary search.
func cbrt(x *big.Int) *big.Int {
	one := big.NewInt(1)
	lo := big.NewInt(0)
	hi := new(big.Int).Lsh(one, uint(x.BitLen())/3+1)

	for lo.Cmp(hi) < 0 {
		mid := new(big.Int).Add(lo, hi)
		mid.Add(mid, one)
		mid.Rsh(mid, 1)

		cube := new(big.Int).Mul(mid, mid)
		cube.Mul(cube, mid)
		if cube.Cmp(x) <= 0 {
			lo = mid
		} else {
			hi = mid.Sub(mid, one)
		}
	}
	return lo
}
