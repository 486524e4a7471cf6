// Package shautil wraps the digest core with a fixed-size Hash value
// type and one-shot helpers.
package shautil

import (
	"encoding/hex"
	"errors"

	"github.com/IamAraragi/sha256-go/sha256"
)

// HashSize is the array size used to store digests. See Hash.
const HashSize = sha256.Size

// MaxHashStringSize is the maximum length of a Hash hex string.
const MaxHashStringSize = HashSize * 2

// ErrInvalidHashLength indicates the length of a hash string or byte
// slice is invalid.
var ErrInvalidHashLength = errors.New("invalid length for hash")

// Hash represents a 32-byte digest value.
type Hash [HashSize]byte

// Sha256 returns sha256(data).
func Sha256(data []byte) Hash {
	return Hash(sha256.Sum256(data))
}

// Hash256 returns sha256(sha256(data)).
func Hash256(data []byte) Hash {
	h := Sha256(data)
	return Sha256(h[:])
}

// String returns the Hash as a hexadecimal string.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Bytes returns a copy of the bytes which represent the hash.
func (h Hash) Bytes() []byte {
	newHash := make([]byte, HashSize)
	copy(newHash, h[:])
	return newHash
}

// SetBytes sets the bytes which represent the hash. An error is
// returned if the number of bytes passed in is not HashSize.
func (h *Hash) SetBytes(newHash []byte) error {
	if len(newHash) != HashSize {
		return ErrInvalidHashLength
	}
	copy(h[:], newHash)
	return nil
}

// IsEqual returns true if target is the same as hash.
func (h *Hash) IsEqual(target *Hash) bool {
	if h == nil && target == nil {
		return true
	}
	if h == nil || target == nil {
		return false
	}
	return *h == *target
}

// NewHash returns a new Hash from a byte slice. An error is returned
// if the number of bytes passed in is not HashSize.
func NewHash(newHash []byte) (*Hash, error) {
	var h Hash
	if err := h.SetBytes(newHash); err != nil {
		return nil, err
	}
	return &h, nil
}

// DecodeStringToHash decodes a hex string to Hash. The length of the
// string must be exactly MaxHashStringSize.
func DecodeStringToHash(str string) (Hash, error) {
	if len(str) != MaxHashStringSize {
		return Hash{}, ErrInvalidHashLength
	}
	hBytes, err := hex.DecodeString(str)
	if err != nil {
		return Hash{}, err
	}

	var h Hash
	copy(h[:], hBytes)
	return h, nil
}
