package sha256

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"testing"
)

type sha256Test struct {
	out string
	in  string
}

var golden = []sha256Test{
	{"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", ""},
	{"ca978112ca1bbdcafac231b39a23dc4da786eff8147c4e72b9807785afee48bb", "a"},
	{"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", "abc"},
	{"b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9", "hello world"},
	{"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", "hello"},
	// FIPS 180-4 two-block message sample.
	{"248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"},
	// NIST 896-bit message sample.
	{"cf5b16a778af8380036ce59e7b0492370b249b11e8f07a51afac45037afee9d1", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu"},
}

func TestGolden(t *testing.T) {
	for i, g := range golden {
		sum := Sum256([]byte(g.in))
		if got := hex.EncodeToString(sum[:]); got != g.out {
			t.Errorf("%d, Sum256(%q) = %s, want %s", i, g.in, got, g.out)
		}
	}
}

func TestMillionA(t *testing.T) {
	sum := Sum256(bytes.Repeat([]byte("a"), 1000000))
	want := "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0"
	if got := hex.EncodeToString(sum[:]); got != want {
		t.Errorf("Sum256(1M x 'a') = %s, want %s", got, want)
	}
}

func TestDeterminism(t *testing.T) {
	data := []byte("determinism probe")
	first := Sum256(data)
	for i := 0; i < 100; i++ {
		if Sum256(data) != first {
			t.Fatalf("%d, Sum256 not deterministic", i)
		}
	}
}

// Independent digests share only the generated constant tables, so
// concurrent computations must all agree.
func TestConcurrentSums(t *testing.T) {
	data := []byte("concurrent probe")
	want := Sum256(data)

	done := make(chan [Size]byte, 16)
	for i := 0; i < 16; i++ {
		go func() {
			done <- Sum256(data)
		}()
	}
	for i := 0; i < 16; i++ {
		if got := <-done; got != want {
			t.Fatalf("concurrent Sum256 mismatch: got %x, want %x", got, want)
		}
	}
}

func TestNoShortInputCollisions(t *testing.T) {
	seen := make(map[[Size]byte]string, 1<<16)
	var buf [3]byte
	for i := 0; i < 1<<16; i++ {
		buf[0] = byte(i >> 16)
		buf[1] = byte(i >> 8)
		buf[2] = byte(i)
		in := string(buf[:])
		sum := Sum256(buf[:])
		if prev, ok := seen[sum]; ok {
			t.Fatalf("collision between %q and %q", prev, in)
		}
		seen[sum] = in
	}
}

func TestPadLength(t *testing.T) {
	tests := []*struct {
		msgLen    int
		paddedLen int
	}{
		{0, 64},
		{1, 64},
		{54, 64},
		{55, 64},  // 0x80 plus length still fit in the same block
		{56, 128}, // 0x80 spills padding into a second block
		{57, 128},
		{63, 128},
		{64, 128}, // full block always gains a whole padding block
		{119, 128},
		{120, 192},
	}

	for i, test := range tests {
		padded := pad(make([]byte, test.msgLen))
		if len(padded) != test.paddedLen {
			t.Errorf("%d, pad length for %d-byte input = %d, want %d",
				i, test.msgLen, len(padded), test.paddedLen)
		}
		if len(padded)%BlockSize != 0 {
			t.Errorf("%d, padded length %d not a multiple of %d", i, len(padded), BlockSize)
		}
	}
}

func TestPadContents(t *testing.T) {
	msg := []byte("abc")
	padded := pad(msg)

	if !bytes.Equal(padded[:3], msg) {
		t.Fatal("padding rewrote the message prefix")
	}
	if padded[3] != 0x80 {
		t.Fatalf("padding marker = %#x, want 0x80", padded[3])
	}
	for i := 4; i < 62; i++ {
		if padded[i] != 0 {
			t.Fatalf("zero run interrupted at offset %d", i)
		}
	}
	// 24-bit message length, big-endian in the last 8 bytes.
	if padded[62] != 0 || padded[63] != 24 {
		t.Fatalf("encoded bit length = %x, want ...0018", padded[56:])
	}
}

// Inputs near the 448 mod 512 boundary must still hash distinctly.
func TestPaddingBoundaryDigests(t *testing.T) {
	sums := make(map[[Size]byte]int)
	for _, n := range []int{55, 56, 57} {
		in := bytes.Repeat([]byte{0x61}, n)
		sum := Sum256(in)
		if prev, ok := sums[sum]; ok {
			t.Fatalf("length %d collides with length %d", n, prev)
		}
		sums[sum] = n
	}
}

func TestOutputShape(t *testing.T) {
	for _, g := range golden {
		sum := Sum256([]byte(g.in))
		if len(sum) != Size {
			t.Fatalf("digest length %d, want %d", len(sum), Size)
		}
	}
}

// BenchmarkSum256/32-8    reference point for the generic block loop.
func BenchmarkSum256(b *testing.B) {
	for _, n := range []int{32, 1024, 8192} {
		data := make([]byte, n)
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				Sum256(data)
			}
		})
	}
}
