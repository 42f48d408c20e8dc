package match

import "math"

// GaussianFilter approximates a Gaussian blur with a handful of box-filter
// passes, alternating between two buffers (ping-ponging) the way a
// separable image blur does. The number and width of the box passes are
// derived from sigma following the fast-Gaussian-approximation formulas (Ismail
// Kazmi's box-width construction from Wells, 1986).
type GaussianFilter struct {
	sigma float64
	n     int

	inp []float32
	buf []float32
}

// NewGaussianFilter returns a filter approximating a Gaussian blur with the
// given standard deviation, using n box-filter passes.
func NewGaussianFilter(sigma float64, n int) *GaussianFilter {
	return &GaussianFilter{sigma: sigma, n: n}
}

// Apply smooths a copy of inp across internal scratch buffers and returns the
// smoothed series; inp itself is not modified. The returned slice aliases the filter's own buffers and is
// only valid until the next call to Apply.
func (g *GaussianFilter) Apply(inp []float32) []float32 {
	g.inp = append(g.inp[:0], inp...)
	if cap(g.buf) < len(inp) {
		g.buf = make([]float32, len(inp))
	}
	g.buf = g.buf[:len(inp)]
	for i := range g.buf {
		g.buf[i] = 0
	}

	return gaussianFilter(g.inp, g.buf, g.sigma, g.n)
}

func gaussianFilter(inp, buf []float32, sigma float64, n int) []float32 {
	w := int(math.Floor(math.Sqrt(12.0*sigma*sigma/float64(n) + 1.0)))
	wl := w
	if w%2 == 0 {
		wl = w - 1
	}
	wu := wl + 2

	num := 12.0*sigma*sigma - float64(n*wl*wl+4*n*wl+3*n)
	m := int(math.Round(-num / float64(4*wl+4)))

	a, b := inp, buf
	i := 0
	for ; i < m; i++ {
		boxFilter(a, b, wl)
		a, b = b, a
	}
	for ; i < n; i++ {
		boxFilter(a, b, wu)
		a, b = b, a
	}

	if i%2 == 0 {
		return inp
	}
	return buf
}

// pingPongIter walks a slice forward, then bounces back and forth across its
// ends, the way a reflecting boundary condition samples "virtual" elements
// past the edge of a finite signal.
type pingPongIter struct {
	slice   []float32
	pos     int
	reverse bool
}

func newPingPongIter(slice []float32) *pingPongIter {
	return &pingPongIter{slice: slice}
}

func (p *pingPongIter) get() float32 { return p.slice[p.pos] }

func (p *pingPongIter) next() { p.go_(p.reverse) }
func (p *pingPongIter) prev() { p.go_(!p.reverse) }

func (p *pingPongIter) go_(reverse bool) {
	if !reverse {
		next := p.pos + 1
		if next == len(p.slice) {
			p.reverse = !p.reverse
		} else {
			p.pos = next
		}
		return
	}
	if p.pos == 0 {
		p.reverse = !p.reverse
	} else {
		p.pos--
	}
}

// boxFilter writes the width-wide moving average of inp into out, using
// reflecting boundaries so every output element is always the mean of
// exactly width samples.
func boxFilter(inp, out []float32, width int) {
	if len(inp) == 0 || width == 0 {
		return
	}

	wl := width / 2
	wr := width - wl

	outIdx := 0
	emit := func(sum float32) {
		out[outIdx] = sum / float32(width)
		outIdx++
	}

	it1 := newPingPongIter(inp)
	it2 := newPingPongIter(inp)
	for i := 0; i < wl; i++ {
		it1.prev()
		it2.prev()
	}

	var sum float32
	for i := 0; i < width; i++ {
		sum += it2.get()
		it2.next()
	}

	if len(inp) > width {
		for i := 0; i < wl; i++ {
			emit(sum)
			sum += it2.get() - it1.get()
			it1.next()
			it2.next()
		}
		for i := 0; i < len(inp)-width-1; i++ {
			emit(sum)
			sum += it2.get() - it1.get()
			it1.pos++
			it2.pos++
		}
		for i := 0; i < wr+1; i++ {
			emit(sum)
			sum += it2.get() - it1.get()
			it1.next()
			it2.next()
		}
	} else {
		for i := 0; i < len(inp); i++ {
			emit(sum)
			sum += it2.get() - it1.get()
			it1.next()
			it2.next()
		}
	}
}
