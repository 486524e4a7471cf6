package sha256

// Logical functions from FIPS 180-4 section 4.1.2. Everything operates
// on uint32 words; additions elsewhere rely on native wraparound.

func rotr(x uint32, n uint) uint32 { return x>>n | x<<(32-n) }

func shr(x uint32, n uint) uint32 { return x >> n }

func ch(x, y, z uint32) uint32 { return (x & y) ^ (^x & z) }

func maj(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }

// bigSigma0 and bigSigma1 mix the working variables inside the
// compression rounds.
func bigSigma0(x uint32) uint32 { return rotr(x, 2) ^ rotr(x, 13) ^ rotr(x, 22) }

func bigSigma1(x uint32) uint32 { return rotr(x, 6) ^ rotr(x, 11) ^ rotr(x, 25) }

// smallSigma0 and smallSigma1 expand the message schedule.
func smallSigma0(x uint32) uint32 { return rotr(x, 7) ^ rotr(x, 18) ^ shr(x, 3) }

func smallSigma1(x uint32) uint32 { return rotr(x, 17) ^ rotr(x, 19) ^ shr(x, 10) }
