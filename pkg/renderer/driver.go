package renderer

import (
	"math"
	"math/rand"
	"runtime"

	"fortio.org/log"
	"golang.org/x/sync/errgroup"

	"github.com/aevyrie/rays/pkg/core"
)

// float32Epsilon is the machine epsilon of a 32-bit float, used for the
// convergence checkpoint exactly as spec'd (10*eps_f32), independent of
// this module's choice of float64 for the vector/color math itself.
const float32Epsilon = 1.1920929e-7

// convergenceThreshold is the per-checkpoint luminance-delta threshold
// below which a pixel's sampling loop exits early.
const convergenceThreshold = 10 * float32Epsilon

// convergenceCheckInterval is how many valid samples separate two
// convergence checkpoints.
const convergenceCheckInterval = 64

// PathTracer is the parallel pixel-grid render driver. Build links a
// PathTracer to its output channel; Run starts the parallel workers
// and streams finished pixels onto that channel.
type PathTracer struct {
	Width, Height uint32

	// Seed gates per-worker *rand.Rand construction; 0 means each
	// worker is randomized independently.
	Seed uint64

	// MaxDist overrides the kernel's escape radius (default MaxDist).
	MaxDist float64

	// NumWorkers overrides the worker pool size (default GOMAXPROCS).
	NumWorkers int

	// Order selects the pixel emission order (default OrderRowMajor).
	Order PixelOrder

	// DisableConvergence disables the early-exit optimization, for
	// verifying it never changes observable color beyond tolerance.
	DisableConvergence bool

	stats  Stats
	pixels chan core.Pixel
}

// Build returns a driver for an image of the given [width, height]
// already linked to its output channel.
func Build(size [2]uint32) *PathTracer {
	w, h := size[0], size[1]
	return &PathTracer{
		Width:   w,
		Height:  h,
		MaxDist: MaxDist,
		pixels:  make(chan core.Pixel, int(w)*int(h)),
	}
}

// Stats returns a snapshot of the render's running counters. Safe to
// call while a render is in flight.
func (pt *PathTracer) Stats() Snapshot {
	return pt.stats.Snapshot()
}

// Run validates preconditions, spawns the worker pool, and returns the
// channel pixels will stream onto. The channel closes once every pixel
// in [0,W)x[0,H) has been computed.
func (pt *PathTracer) Run(scene *core.Scene, nSamples, maxBounces int) <-chan core.Pixel {
	if pt.Width == 0 || pt.Height == 0 {
		panic("renderer: image dimensions must be non-zero")
	}
	if len(scene.Objects) == 0 {
		panic("renderer: scene must contain at least one object")
	}
	if nSamples < 1 {
		panic("renderer: n_samples must be >= 1")
	}
	if maxBounces < 1 {
		panic("renderer: max_bounces must be >= 1")
	}

	snapshot := scene.Clone()

	order := pt.Order
	if order == nil {
		order = OrderRowMajor
	}
	maxDist := pt.MaxDist
	if maxDist == 0 {
		maxDist = MaxDist
	}
	numWorkers := pt.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	area := int(pt.Width) * int(pt.Height)
	// Row-sized chunks, same sizing the teacher uses for tiles: enough
	// chunks per worker that a slow pixel in one chunk doesn't stall
	// the whole pool, few enough that dispatch overhead stays small.
	chunkPixels := max(1, int(pt.Height)/(numWorkers*4)) * int(pt.Width)
	if chunkPixels < 1 {
		chunkPixels = 1
	}

	log.Infof("renderer: starting render %dx%d, %d workers, %d samples/px, %d max bounces",
		pt.Width, pt.Height, numWorkers, nSamples, maxBounces)

	type chunk struct{ start, end int }
	numChunks := (area + chunkPixels - 1) / chunkPixels
	tasks := make(chan chunk, numChunks)
	for start := 0; start < area; start += chunkPixels {
		end := min(start+chunkPixels, area)
		tasks <- chunk{start, end}
	}
	close(tasks)

	var g errgroup.Group
	for w := 0; w < numWorkers; w++ {
		workerID := w
		g.Go(func() error {
			rng := pt.newWorkerRand(workerID)
			for t := range tasks {
				for i := t.start; i < t.end; i++ {
					x, y := order(i, pt.Width, pt.Height)
					pixel := pt.renderPixel(x, y, snapshot, nSamples, maxBounces, maxDist, rng)
					pt.deliver(pixel)
				}
			}
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(pt.pixels)
		log.Infof("renderer: render complete, stats=%+v", pt.stats.Snapshot())
	}()

	return pt.pixels
}

// newWorkerRand builds a per-worker RNG. When Seed is non-zero the
// sequence is deterministic and distinct per worker; when Seed is zero
// each worker is independently randomized.
func (pt *PathTracer) newWorkerRand(workerID int) *rand.Rand {
	if pt.Seed == 0 {
		return rand.New(rand.NewSource(int64(uint64(workerID)*0x9e3779b97f4a7c15) + rand.Int63()))
	}
	return rand.New(rand.NewSource(int64(pt.Seed) + int64(workerID)))
}

// deliver sends pixel onto the output channel without blocking; a full
// channel means the consumer has stopped draining, so the send is
// dropped per the spec's "consumer disconnection" error taxonomy.
func (pt *PathTracer) deliver(pixel core.Pixel) {
	select {
	case pt.pixels <- pixel:
		pt.stats.recordPixel()
	default:
		pt.stats.recordDroppedPixel()
		log.Debugf("renderer: dropped pixel %v, consumer not draining", pixel.Position)
	}
}

// renderPixel runs the per-pixel multi-sample accumulation loop:
// jittered camera rays, adaptive early exit on luminance convergence,
// gamma correction, and quantization.
func (pt *PathTracer) renderPixel(x, y uint32, scene *core.Scene, nSamples, maxBounces int, maxDist float64, rng *rand.Rand) core.Pixel {
	accum := core.Color{}
	valid := 0
	lastLuma := math.Inf(1)

	for s := 0; s < nSamples; s++ {
		jx, jy := core.UniformUnit(rng), core.UniformUnit(rng)
		u := (float64(x)+jx)/float64(pt.Width)*2 - 1
		v := (float64(y)+jy)/float64(pt.Height)*2 - 1

		ray := scene.Camera.Primary(u, v)
		c := Color(ray, scene, maxBounces, maxDist, rng)
		if !c.IsFinite() {
			continue
		}

		valid++
		accum = accum.Add(c)

		if !pt.DisableConvergence && valid%convergenceCheckInterval == 0 {
			luma := accum.Scale(1 / float64(valid)).Luminance()
			if math.Abs(lastLuma-luma) <= convergenceThreshold {
				pt.stats.recordSamples(uint64(valid), uint64(nSamples-s-1))
				return finishPixel(x, y, accum, valid)
			}
			lastLuma = luma
		}
	}

	pt.stats.recordSamples(uint64(valid), 0)
	return finishPixel(x, y, accum, valid)
}

func finishPixel(x, y uint32, accum core.Color, valid int) core.Pixel {
	if valid == 0 {
		return core.Pixel{Position: [2]uint32{x, y}, Color: core.Black.Quantize()}
	}
	n := float64(valid)
	mean := core.NewColor(accum.R/n, accum.G/n, accum.B/n, accum.A/n)
	return core.Pixel{Position: [2]uint32{x, y}, Color: mean.Gamma().Quantize()}
}
