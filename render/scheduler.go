package render

import (
	"context"

	"golang.org/x/sync/errgroup"

	"render-engine/sampler"
	"render-engine/scene"
)

const tileSize = 32

// Tile is one rectangular region of the frame, in pixel coordinates.
type Tile struct {
	X0, Y0, X1, Y1 int
}

// EnumerateTiles lays the frame out row-major in tileSize squares, the
// unit of work the scheduler hands to workers and the unit of ownership
// MPI ranks stride over (§4.M).
func EnumerateTiles(width, height int) []Tile {
	var tiles []Tile
	for y := 0; y < height; y += tileSize {
		y1 := y + tileSize
		if y1 > height {
			y1 = height
		}
		for x := 0; x < width; x += tileSize {
			x1 := x + tileSize
			if x1 > width {
				x1 = width
			}
			tiles = append(tiles, Tile{X0: x, Y0: y, X1: x1, Y1: y1})
		}
	}
	return tiles
}

// RankTiles returns the subset of tiles owned by rank out of numRanks
// under simple round-robin striding: rank r owns tiles {r, r+S, r+2S...}
// (§4.M MPI striding).
func RankTiles(tiles []Tile, rank, numRanks int) []Tile {
	if numRanks <= 1 {
		return tiles
	}
	var owned []Tile
	for i, t := range tiles {
		if i%numRanks == rank {
			owned = append(owned, t)
		}
	}
	return owned
}

// RenderTiles runs one tile-parallel pass over tiles, writing completed
// pixels into fb. Each worker owns two private, thread-local samplers
// seeded from its tile index (§5 "Samplers are thread-local"): a Halton
// sequence reserved for §4.L pixel-jitter placement, and a Xorshift-128
// generator derived from st.Seed that drives every other stochastic draw
// (BxDF lobe selection, soft shadows, DOF, indirect bounces). Keeping the
// two separate means a low-discrepancy sequence never gets reused as a
// uniform RNG. Results are reproducible per tile regardless of goroutine
// scheduling order. ctx cancellation is polled at pixel granularity so a
// stop signal halts work promptly without discarding already-committed
// pixels (§5 Cancellation). A panic inside a worker is recovered there and
// re-raised from RenderTiles once every worker has returned, so the pixels
// already committed to fb stay in place.
func RenderTiles(ctx context.Context, scn *scene.Scene, tiles []Tile, fb *FrameBuffer, st *Settings, workers int) error {
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	panics := make(chan interface{}, 1)
	for i, t := range tiles {
		tile := t
		haltonSeed := uint64(i) * 0x9E3779B97F4A7C15
		xorshiftSeed := uint32(st.Seed+uint64(i)*0x9E3779B97F4A7C15) | 1
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					select {
					case panics <- r:
					default:
					}
				}
			}()
			jitter := sampler.NewHalton(haltonSeed)
			rng := sampler.NewXorshift128(xorshiftSeed)
			return renderTile(ctx, scn, tile, fb, st, jitter, rng)
		})
	}
	err := g.Wait()
	select {
	case r := <-panics:
		panic(r)
	default:
	}
	return err
}

func renderTile(ctx context.Context, scn *scene.Scene, t Tile, fb *FrameBuffer, st *Settings, jitter *sampler.Halton, rng *sampler.Xorshift128) error {
	for y := t.Y0; y < t.Y1; y++ {
		for x := t.X0; x < t.X1; x++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			res := SamplePixel(scn, x, y, jitter, rng, st)
			fb.SetPixel(x, y, res.Color, res.Depth, res.Samples, st.SRGB, res.UsedIrradiance)
		}
	}
	return nil
}
