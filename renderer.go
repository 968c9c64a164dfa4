package flame

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/chaosgame/flame/internal/parallel"
)

// Renderer runs the chaos game: it repeatedly draws a random start point
// in the world rectangle, folds it through randomly chosen transforms,
// and registers the trajectory as color hits on a shared Image.
//
// A Renderer holds only immutable configuration and is safe to share
// across renders.
type Renderer struct {
	world      Rect
	transforms []Transform
	symmetry   int
	workers    int
	seed       int64
	seeded     bool
}

// NewRenderer creates a renderer from the given options.
// It returns an error if the configuration is unusable: an empty
// transform subset, a degenerate world rectangle, or non-positive
// symmetry or worker counts.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(o.transforms) == 0 {
		return nil, errors.New("flame: no transforms selected")
	}
	for _, t := range o.transforms {
		if !t.Valid() {
			return nil, fmt.Errorf("flame: invalid transform %d", int(t))
		}
	}
	if o.world.Width <= 0 || o.world.Height <= 0 {
		return nil, fmt.Errorf("flame: invalid world rectangle: width=%g, height=%g (both must be > 0)", o.world.Width, o.world.Height)
	}
	if o.symmetry < 1 {
		return nil, fmt.Errorf("flame: symmetry must be >= 1, got %d", o.symmetry)
	}
	if o.workers < 1 {
		return nil, fmt.Errorf("flame: workers must be >= 1, got %d", o.workers)
	}

	transforms := make([]Transform, len(o.transforms))
	copy(transforms, o.transforms)

	return &Renderer{
		world:      o.world,
		transforms: transforms,
		symmetry:   o.symmetry,
		workers:    o.workers,
		seed:       o.seed,
		seeded:     o.seeded,
	}, nil
}

// Render runs the chaos game against img until the sample budget is
// spent. The budget is split evenly across the configured workers
// (integer division; the remainder is dropped), each worker running an
// independent sampling loop with its own random state against the same
// shared image. Render blocks until every worker has finished.
//
// Cancelling ctx aborts the run and returns the context's error; the
// image then holds whatever hits were accumulated before the abort.
func (r *Renderer) Render(ctx context.Context, img *Image, samples, iterations int) error {
	if img == nil {
		return errors.New("flame: nil image")
	}
	if samples < 1 || iterations < 1 {
		return fmt.Errorf("flame: samples and iterations must be >= 1, got samples=%d, iterations=%d", samples, iterations)
	}

	chunks := parallel.SplitBudget(samples, r.workers)

	Logger().Info("render start",
		"width", img.Width(), "height", img.Height(),
		"samples", samples, "iterations", iterations,
		"workers", r.workers, "symmetry", r.symmetry,
		"transforms", len(r.transforms))

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		chunk := chunk
		rng := rand.New(rand.NewSource(r.workerSeed(i)))
		g.Go(func() error {
			return r.sample(ctx, img, rng, chunk, iterations)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	Logger().Info("render done", "hits", img.Hits(), "elapsed", time.Since(start))
	return nil
}

// workerSeed derives an independent seed per worker. Workers must never
// share random state: the shared global source would either race or
// serialize the hot loop on its internal lock.
func (r *Renderer) workerSeed(worker int) int64 {
	base := r.seed
	if !r.seeded {
		base = time.Now().UnixNano()
	}
	return base + int64(worker)
}

// sample is one worker's chaos-game loop. For each sample it draws a
// uniform start point in the world, then iterates: pick a transform
// uniformly at random, replace the point with its image, and plot the
// point after every iteration. The trajectory is not required to stay
// inside the world; points that wander off the raster are dropped at
// plot time.
func (r *Renderer) sample(ctx context.Context, img *Image, rng *rand.Rand, samples, iterations int) error {
	for s := 0; s < samples; s++ {
		if s%1024 == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}

		p := randomPointIn(r.world, rng)
		for i := 0; i < iterations; i++ {
			t := r.transforms[rng.Intn(len(r.transforms))]
			p = t.Apply(p)
			r.plot(img, p, rng)
		}
	}

	Logger().Debug("worker done", "samples", samples)
	return nil
}

// plot registers p and its symmetry-1 rotated copies on the image, each
// with an independently random color. World coordinates map to pixel
// coordinates by scaling into the raster and truncating toward zero;
// coordinates off the raster register nothing.
func (r *Renderer) plot(img *Image, p Point, rng *rand.Rand) {
	w, h := img.Width(), img.Height()
	for s := 0; s < r.symmetry; s++ {
		q := p
		if s > 0 {
			q = p.Rotate(2 * math.Pi * float64(s) / float64(r.symmetry))
		}

		x := int((q.X - r.world.X) / r.world.Width * float64(w))
		y := int((q.Y - r.world.Y) / r.world.Height * float64(h))
		if !img.Contains(x, y) {
			continue
		}

		img.AddHit(x, y, color.RGBA{
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
			A: 255,
		})
	}
}

// randomPointIn draws a point uniformly at random inside r.
func randomPointIn(r Rect, rng *rand.Rand) Point {
	return Point{
		X: r.X + rng.Float64()*r.Width,
		Y: r.Y + rng.Float64()*r.Height,
	}
}
