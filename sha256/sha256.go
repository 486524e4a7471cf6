// Package sha256 implements the SHA-256 hash algorithm as defined in
// FIPS 180-4. Unlike most implementations it does not embed the
// published constant tables: the round constants and the initial hash
// value are derived once per process from the fractional parts of
// prime roots, exactly as the standard defines them.
//
// Only the one-shot Sum256 is exposed. There is no streaming
// hash.Hash implementation; the whole message must be in memory.
package sha256

import "encoding/binary"

// Size is the length of a SHA-256 checksum in bytes.
const Size = 32

// BlockSize is the block length of SHA-256 in bytes.
const BlockSize = 64

const chunk = 64

// digest is the running hash state over the blocks of one message.
// It is seeded from the initial hash value and folded once per block.
type digest struct {
	h [8]uint32
}

func (d *digest) reset() {
	_, h0 := constTables()
	d.h = *h0
}

// pad extends msg per FIPS 180-4 section 5.1.1: one 0x80 byte, the
// minimum run of zero bytes so that the length reaches 448 mod 512
// bits, then the original length in bits as a big-endian 64-bit
// integer. The result length is always a multiple of BlockSize.
//
// When msg already sits right before the boundary, the zero run is
// empty and the loop below appends nothing.
func pad(msg []byte) []byte {
	bitLen := uint64(len(msg)) * 8

	p := make([]byte, len(msg), len(msg)+BlockSize+8)
	copy(p, msg)
	p = append(p, 0x80)
	for len(p)%BlockSize != 56 {
		p = append(p, 0x00)
	}

	var l [8]byte
	binary.BigEndian.PutUint64(l[:], bitLen)
	return append(p, l[:]...)
}

// Sum256 returns the SHA-256 checksum of data.
func Sum256(data []byte) [Size]byte {
	var d digest
	d.reset()
	block(&d, pad(data))

	var sum [Size]byte
	for i, s := range d.h {
		binary.BigEndian.PutUint32(sum[i*4:], s)
	}
	return sum
}
