package classify

import "github.com/linuxmatters/chromafp/internal/rollingimage"

// Bank feeds each incoming chroma vector into a rolling integral image and,
// once enough rows are retained, assembles one 32-bit subfingerprint per
// row by running every classifier against the image and packing its 2-bit
// output least-significant-first.
type Bank struct {
	classifiers []Classifier
	maxWidth    uint32
	image       *rollingimage.Image
}

// NewBank returns a classifier bank over classifiers, each applied to a
// rolling image of the given width (BandCount) and maxWidth rows (the
// widest classifier's temporal extent).
func NewBank(classifiers []Classifier, width int, maxWidth uint32) *Bank {
	return &Bank{
		classifiers: classifiers,
		maxWidth:    maxWidth,
		image:       rollingimage.New(width, int(maxWidth)),
	}
}

func (b *Bank) Process(input []float64, emit func([]uint32)) {
	b.image.Push(input)
	if uint32(b.image.Height()) < b.maxWidth {
		return
	}

	var fp uint32
	for i, c := range b.classifiers {
		v := c.Filter.apply(b.image)
		bits := c.Quantizer.Quantize(v)
		fp |= bits << uint(2*i)
	}
	emit([]uint32{fp})
}

func (b *Bank) Finish(emit func([]uint32)) {}
