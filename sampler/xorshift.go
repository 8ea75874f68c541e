package sampler

// Xorshift128 is the classic four-word xorshift generator. It is the
// sampler named by the end-to-end test scenarios ("seed = 42,
// xorshift-128"): a textbook, unpatented PRNG, not an ecosystem package,
// since the spec pins the exact algorithm rather than "some randomness."
type Xorshift128 struct {
	x, y, z, w uint32
}

// NewXorshift128 seeds the generator from a single uint32, expanding it
// with a small fixed splitter so an all-zero or small seed still
// produces a well-mixed initial state.
func NewXorshift128(seed uint32) *Xorshift128 {
	s := &Xorshift128{
		x: seed ^ 0x9908b0df,
		y: (seed * 1812433253) + 1,
		z: (seed * 2654435761) + 2,
		w: (seed * 0x85ebca6b) + 3,
	}
	if s.x == 0 {
		s.x = 1
	}
	// Warm up.
	for i := 0; i < 8; i++ {
		s.nextUint32()
	}
	return s
}

func (s *Xorshift128) nextUint32() uint32 {
	t := s.x ^ (s.x << 11)
	s.x, s.y, s.z = s.y, s.z, s.w
	s.w = s.w ^ (s.w >> 19) ^ (t ^ (t >> 8))
	return s.w
}

// Get1f returns a uniform float in [0, 1).
func (s *Xorshift128) Get1f() float32 {
	return float32(s.nextUint32()>>8) / float32(1<<24)
}

func (s *Xorshift128) Get2f() (float32, float32) {
	return s.Get1f(), s.Get1f()
}

func (s *Xorshift128) Get3f() (float32, float32, float32) {
	return s.Get1f(), s.Get1f(), s.Get1f()
}
