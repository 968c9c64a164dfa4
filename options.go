package flame

// RendererOption configures a Renderer during creation.
// Use functional options to customize Renderer behavior.
//
// Example:
//
//	// Default: full catalog, no symmetry, single worker
//	r, err := flame.NewRenderer()
//
//	// Three-fold symmetry over two transforms, four workers
//	r, err := flame.NewRenderer(
//	    flame.WithTransforms(flame.TransformSwirl, flame.TransformFish),
//	    flame.WithSymmetry(3),
//	    flame.WithWorkers(4),
//	)
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	world      Rect
	transforms []Transform
	symmetry   int
	workers    int
	seed       int64
	seeded     bool
}

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		world:      DefaultWorld,
		transforms: Transforms(),
		symmetry:   1,
		workers:    1,
	}
}

// WithWorld sets the world rectangle sampled by the chaos game.
// The default is DefaultWorld.
func WithWorld(world Rect) RendererOption {
	return func(o *rendererOptions) {
		o.world = world
	}
}

// WithTransforms restricts the renderer to the given subset of the
// transformation catalog. The default is the full catalog.
func WithTransforms(ts ...Transform) RendererOption {
	return func(o *rendererOptions) {
		o.transforms = ts
	}
}

// WithSymmetry sets the rotational symmetry order: each plotted point is
// also plotted at n-1 rotated copies around the world origin. The default
// of 1 plots each point once.
func WithSymmetry(n int) RendererOption {
	return func(o *rendererOptions) {
		o.symmetry = n
	}
}

// WithWorkers sets the number of concurrent sampling workers the render
// budget is split across. The default is 1 (single-threaded).
func WithWorkers(n int) RendererOption {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// WithSeed fixes the base random seed. Each worker derives its own
// independent stream from it, so a seeded render with a fixed worker
// count draws a reproducible sample sequence. Without WithSeed every
// render is seeded from the clock.
func WithSeed(seed int64) RendererOption {
	return func(o *rendererOptions) {
		o.seed = seed
		o.seeded = true
	}
}
