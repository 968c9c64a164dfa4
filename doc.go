// Package flame renders fractal flame images with the chaos game.
//
// # Overview
//
// The chaos game reveals the attractor of an iterated function system:
// starting from a random point, it repeatedly applies a randomly chosen
// nonlinear transformation and plots where the trajectory lands. flame
// accumulates those landings as color hits in a histogram image whose
// pixels keep a running average of every hit they receive.
//
// # Quick Start
//
//	import "github.com/chaosgame/flame"
//
//	img, _ := flame.NewImage(800, 600)
//	r, _ := flame.NewRenderer(
//	    flame.WithTransforms(flame.TransformSwirl, flame.TransformSpherical),
//	    flame.WithWorkers(4),
//	)
//	_ = r.Render(context.Background(), img, 500_000, 50)
//	_ = img.SavePNG("flame.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Renderer, Image, Transform, Point, Rect
//   - Internal: parallel (sample budget splitting)
//
// # Concurrency
//
// A render splits its sample budget across workers, each with private
// random state, all writing into one mutex-guarded Image. Hit order
// between workers is unspecified; the accumulated image is statistically,
// not bit-exactly, reproducible.
//
// # Coordinate System
//
// The world rectangle (by default the square [-1.5, 1.5]²) maps onto the
// raster with the origin pixel at the rectangle's (X, Y) corner; world
// coordinates scale linearly into pixel indices and truncate toward zero.
package flame

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
