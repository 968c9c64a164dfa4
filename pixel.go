package flame

import "image/color"

// Pixel holds the running average color of every hit landed on one raster
// cell, together with the number of hits that produced it.
type Pixel struct {
	R, G, B uint8
	Hits    uint64
}

// Mix folds a new hit color into the pixel as an incremental running mean:
// each channel becomes floor((old*hits + new*weight) / (hits+weight)).
//
// The hit count advances by exactly one per call regardless of weight, so
// for weight != 1 the accumulated color leans toward the most recent hit
// rather than forming a true weighted average. This asymmetry is the
// as-built accumulation rule and is kept deliberately; callers registering
// ordinary hits pass weight 1, where the formula is an exact running mean.
// A weight of zero is treated as one so the update stays total.
func (p *Pixel) Mix(c color.RGBA, weight uint64) {
	if weight == 0 {
		weight = 1
	}
	n := p.Hits
	d := n + weight
	p.R = uint8((uint64(p.R)*n + uint64(c.R)*weight) / d)
	p.G = uint8((uint64(p.G)*n + uint64(c.G)*weight) / d)
	p.B = uint8((uint64(p.B)*n + uint64(c.B)*weight) / d)
	p.Hits++
}

// Color returns the pixel's accumulated color as an opaque color.RGBA.
func (p Pixel) Color() color.RGBA {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
}
