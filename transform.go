package flame

import (
	"fmt"
	"math"
)

// Transform identifies one of the fixed nonlinear point transformations
// applied by the chaos game. The catalog is closed: a Transform is an enum
// value and Apply dispatches through a fixed table, so the set of available
// transformations is known at compile time.
type Transform int

// The transformation catalog, in its fixed order.
const (
	TransformSpherical Transform = iota
	TransformSinusoidal
	TransformSwirl
	TransformLinear
	TransformDiamond
	TransformFish

	numTransforms
)

var transformNames = [numTransforms]string{
	TransformSpherical:  "spherical",
	TransformSinusoidal: "sinusoidal",
	TransformSwirl:      "swirl",
	TransformLinear:     "linear",
	TransformDiamond:    "diamond",
	TransformFish:       "fish",
}

var transformFuncs = [numTransforms]func(Point) Point{
	TransformSpherical:  spherical,
	TransformSinusoidal: sinusoidal,
	TransformSwirl:      swirl,
	TransformLinear:     linear,
	TransformDiamond:    diamond,
	TransformFish:       fish,
}

// Transforms returns the full catalog in its fixed order.
func Transforms() []Transform {
	ts := make([]Transform, numTransforms)
	for i := range ts {
		ts[i] = Transform(i)
	}
	return ts
}

// String returns the transform's catalog name.
func (t Transform) String() string {
	if t < 0 || t >= numTransforms {
		return fmt.Sprintf("Transform(%d)", int(t))
	}
	return transformNames[t]
}

// Valid reports whether t is a member of the catalog.
func (t Transform) Valid() bool {
	return t >= 0 && t < numTransforms
}

// ParseTransform looks up a transform by its catalog name.
func ParseTransform(name string) (Transform, error) {
	for i, n := range transformNames {
		if n == name {
			return Transform(i), nil
		}
	}
	return 0, fmt.Errorf("flame: unknown transform %q", name)
}

// Apply maps p through the transformation. Every transform is total over
// the finite plane: inputs where the underlying formula degenerates (the
// spherical transform at the origin) produce a defined fallback point
// instead of a non-finite value. An invalid Transform applies the identity.
func (t Transform) Apply(p Point) Point {
	if !t.Valid() {
		return p
	}
	return transformFuncs[t](p)
}

// spherical maps p to p/r². The origin has no reciprocal radius, so it
// maps to itself.
func spherical(p Point) Point {
	r2 := p.LengthSquared()
	if r2 == 0 {
		return Point{}
	}
	return Point{X: p.X / r2, Y: p.Y / r2}
}

func sinusoidal(p Point) Point {
	return Point{X: math.Sin(p.X), Y: math.Sin(p.Y)}
}

// swirl rotates p about the origin by an angle equal to its squared radius.
func swirl(p Point) Point {
	r2 := p.LengthSquared()
	sin := math.Sin(r2)
	cos := math.Cos(r2)
	return Point{
		X: p.X*sin - p.Y*cos,
		Y: p.X*cos + p.Y*sin,
	}
}

func linear(p Point) Point {
	return p
}

func diamond(p Point) Point {
	return Point{X: math.Abs(p.X), Y: math.Abs(p.Y)}
}

func fish(p Point) Point {
	return Point{X: p.X + math.Sin(p.Y), Y: p.Y + math.Sin(p.X)}
}
