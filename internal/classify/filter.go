// Package classify implements the 2D Haar-like filter bank applied to the
// rolling chroma integral image, the 4-level quantizer, and the bit-packed
// subfingerprint assembly.
package classify

import "github.com/linuxmatters/chromafp/internal/rollingimage"

// FilterKind selects one of the six Haar-like area-contrast templates.
type FilterKind int

const (
	F0 FilterKind = iota
	F1
	F2
	F3
	F4
	F5
)

// Filter is a (kind, y, height, width) descriptor: y is the column offset
// into the chroma vector, height spans chroma columns, width is the
// temporal extent in rows.
type Filter struct {
	Kind   FilterKind
	Y      uint32
	Height uint32
	Width  uint32
}

// apply computes the filter's scalar value over the newest Width rows of
// im, which must currently expose at least Width rows.
func (f Filter) apply(im *rollingimage.Image) float64 {
	r2 := im.Height()
	w := int(f.Width)
	r0 := r2 - w
	r1 := r2 - w/2
	y := int(f.Y)
	h := int(f.Height)
	area := func(ra, ca, rb, cb int) float64 { return im.Area(ra, ca, rb, cb) }
	hw := float64(h * w)

	switch f.Kind {
	case F0:
		return area(r0, y, r2, y+h) / hw
	case F1:
		return (area(r1, y, r2, y+h) - area(r0, y, r1, y+h)) / hw
	case F2:
		return (area(r0, y+h/2, r2, y+h) - area(r0, y, r2, y+h/2)) / hw
	case F3:
		pos := area(r0, y, r1, y+h/2) + area(r1, y+h/2, r2, y+h)
		neg := area(r0, y+h/2, r1, y+h) + area(r1, y, r2, y+h/2)
		return (pos - neg) / hw
	case F4:
		third := h / 3
		mid := area(r0, y+third, r2, y+2*third)
		edges := area(r0, y, r2, y+third) + area(r0, y+2*third, r2, y+h)
		return (mid - edges/2) / hw
	case F5:
		rthird := w / 3
		mid := area(r0+rthird, y, r0+2*rthird, y+h)
		edges := area(r0, y, r0+rthird, y+h) + area(r0+2*rthird, y, r2, y+h)
		return (mid - edges/2) / hw
	default:
		panic("classify: unknown filter kind")
	}
}
