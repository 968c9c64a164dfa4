package flame

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"sync"

	"golang.org/x/image/bmp"
)

// Image is the shared hit histogram the sampling workers write into: a
// width×height grid of Pixel accumulators stored row-major in a flat slice.
//
// A single mutex guards the whole grid. Every hit registration takes the
// lock for its bounds check and pixel update, so concurrent workers never
// lose updates, at the price of serializing on the lock. The lock is the
// throughput ceiling under many workers; per-row sharding would relax it
// but also reorder nothing observable, since hit order between workers is
// already unspecified.
type Image struct {
	width  int
	height int

	mu   sync.Mutex
	data []Pixel
}

// NewImage creates a zeroed histogram with the given dimensions.
func NewImage(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("flame: invalid dimensions: width=%d, height=%d (both must be > 0)", width, height)
	}
	return &Image{
		width:  width,
		height: height,
		data:   make([]Pixel, width*height),
	}, nil
}

// Width returns the width of the image in pixels.
func (m *Image) Width() int {
	return m.width
}

// Height returns the height of the image in pixels.
func (m *Image) Height() int {
	return m.height
}

// Contains reports whether (x, y) is a valid pixel coordinate.
func (m *Image) Contains(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// AddHit folds the color c into the pixel at (x, y). Coordinates outside
// the raster are silently dropped; a hit off the image is expected during
// sampling, not an error. AddHit is safe for concurrent use.
func (m *Image) AddHit(x, y int, c color.RGBA) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.Contains(x, y) {
		return
	}
	m.data[y*m.width+x].Mix(c, 1)
}

// PixelAt returns a copy of the accumulator at (x, y), or a zero Pixel for
// out-of-range coordinates. Safe for concurrent use.
func (m *Image) PixelAt(x, y int) Pixel {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.Contains(x, y) {
		return Pixel{}
	}
	return m.data[y*m.width+x]
}

// Hits returns the total number of hits registered across all pixels.
func (m *Image) Hits() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total uint64
	for i := range m.data {
		total += m.data[i].Hits
	}
	return total
}

// ToRGBA converts the histogram to a dense image.RGBA snapshot. Intended
// to be called once sampling has finished.
func (m *Image) ToRGBA() *image.RGBA {
	m.mu.Lock()
	defer m.mu.Unlock()
	img := image.NewRGBA(image.Rect(0, 0, m.width, m.height))
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			img.SetRGBA(x, y, m.data[y*m.width+x].Color())
		}
	}
	return img
}

// At implements the image.Image interface.
func (m *Image) At(x, y int) color.Color {
	return m.PixelAt(x, y).Color()
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// SavePNG saves the accumulated image to a PNG file.
func (m *Image) SavePNG(path string) error {
	return m.save(path, png.Encode)
}

// SaveBMP saves the accumulated image to an uncompressed BMP file.
func (m *Image) SaveBMP(path string) error {
	return m.save(path, bmp.Encode)
}

func (m *Image) save(path string, encode func(w io.Writer, img image.Image) error) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return encode(f, m.ToRGBA())
}
