package render

// RankBuffer pairs a rank's local FrameBuffer with its rank number,
// the unit Gather composes (§4.N Image Composer).
type RankBuffer struct {
	Rank int
	Buf  *FrameBuffer
}

// Gather reassembles one full-frame FrameBuffer out of the per-rank
// partial buffers produced by RankTiles/RenderTiles, the in-process
// stand-in for the original MPI gather: every rank in the slice, the
// master included, is handled alike, and its pixels are written wherever
// its write mask says it owns the pixel. Composition order across ranks
// doesn't matter since rank tile ownership is disjoint by construction.
func Gather(width, height int, ranks []RankBuffer) *FrameBuffer {
	out := NewFrameBuffer(width, height)
	for _, rb := range ranks {
		src := rb.Buf
		for i := 0; i < width*height; i++ {
			if src.WriteMask[i] == 0 {
				continue
			}
			out.Color[3*i+0] = src.Color[3*i+0]
			out.Color[3*i+1] = src.Color[3*i+1]
			out.Color[3*i+2] = src.Color[3*i+2]
			out.Depth[i] = src.Depth[i]
			out.SampleCount[i] = src.SampleCount[i]
			out.IrradianceMask[i] = src.IrradianceMask[i]
			out.WriteMask[i] = 1
		}
		out.rendered += src.RenderedCount()
	}
	return out
}
