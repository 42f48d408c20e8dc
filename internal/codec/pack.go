package codec

import "io"

// packInt3 and packInt5 pack a stream of small-width symbols (3 and 5 bits
// respectively) contiguously into bytes, least-significant-bit first, the
// same layout libchromaprint's encoder uses for normal and exception values.
// The packing is plain bit concatenation: symbol i occupies bits [w*i, w*i+w)
// of the resulting bitstream.

func packedInt3Len(n int) int { return (n*3 + 7) / 8 }
func packedInt5Len(n int) int { return (n*5 + 7) / 8 }

func packInt3(inp []byte, out []byte) []byte { return packBits(inp, 3, out) }
func packInt5(inp []byte, out []byte) []byte { return packBits(inp, 5, out) }

func packBits(inp []byte, width uint, out []byte) []byte {
	var acc uint32
	var nbits uint
	for _, v := range inp {
		acc |= uint32(v) << nbits
		nbits += width
		for nbits >= 8 {
			out = append(out, byte(acc))
			acc >>= 8
			nbits -= 8
		}
	}
	if nbits > 0 {
		out = append(out, byte(acc))
	}
	return out
}

// bitReader pulls fixed-width symbols out of a byte slice, least-significant
// bit first, tracking exactly how many whole bytes have been touched so the
// caller can find where the next section of the wire format begins.
type bitReader struct {
	data   []byte
	bitPos int
}

func (r *bitReader) readBits(width uint) (uint32, error) {
	var acc uint32
	for i := uint(0); i < width; i++ {
		byteIdx := r.bitPos / 8
		if byteIdx >= len(r.data) {
			return 0, io.ErrUnexpectedEOF
		}
		bitIdx := uint(r.bitPos % 8)
		bit := (r.data[byteIdx] >> bitIdx) & 1
		acc |= uint32(bit) << i
		r.bitPos++
	}
	return acc, nil
}

func (r *bitReader) consumedBytes() int { return (r.bitPos + 7) / 8 }

// unpackInt3Until reads 3-bit symbols until it has seen wantTerminators zero
// symbols (one per encoded subfingerprint), returning every symbol read
// (terminators included) and the number of whole bytes consumed.
func unpackInt3Until(data []byte, wantTerminators int) ([]byte, int, error) {
	if wantTerminators == 0 {
		return nil, 0, nil
	}
	r := &bitReader{data: data}
	normals := make([]byte, 0, wantTerminators*2)
	terminators := 0
	for terminators < wantTerminators {
		v, err := r.readBits(3)
		if err != nil {
			return nil, 0, err
		}
		normals = append(normals, byte(v))
		if v == 0 {
			terminators++
		}
	}
	return normals, r.consumedBytes(), nil
}

// unpackInt5 reads exactly count 5-bit symbols from data.
func unpackInt5(data []byte, count int) []byte {
	if count == 0 {
		return nil
	}
	r := &bitReader{data: data}
	out := make([]byte, 0, count)
	for i := 0; i < count; i++ {
		v, _ := r.readBits(5)
		out = append(out, byte(v))
	}
	return out
}
