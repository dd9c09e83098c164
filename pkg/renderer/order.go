package renderer

// PixelOrder maps a flat index in [0, W*H) to an image-space (x, y)
// position. The driver iterates indices in increasing order and asks
// the configured PixelOrder where each one lands; workers then render
// whatever position comes back.
type PixelOrder func(index int, width, height uint32) (x, y uint32)

// OrderRowMajor is the default: natural row-major iteration.
func OrderRowMajor(index int, width, height uint32) (x, y uint32) {
	w := int(width)
	return uint32(index % w), uint32(index / w)
}

// OrderSkip spreads early pixels across the image by striding through
// the index space by gcd(W, H) (clamped into [1, W/3]), so a consumer
// watching a partial render sees coverage sooner than strict row-major
// would give it. For some W,H this mapping is not injective over
// [0, W*H) (two indices can land on the same pixel, leaving another
// unvisited) — this is a render-progress heuristic, not a correctness
// requirement, exactly as specified. OrderRowMajor, which is always a
// full bijection, remains the default.
func OrderSkip(index int, width, height uint32) (x, y uint32) {
	area := int(width) * int(height)
	skip := gcd(int(width), int(height))
	if skip < 1 {
		skip = 1
	}
	if maxSkip := int(width) / 3; maxSkip >= 1 && skip > maxSkip {
		skip = maxSkip
	}
	j := (index*skip)%area + (index*skip)/area
	h := int(height)
	return uint32(j / h), uint32(j % h)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
