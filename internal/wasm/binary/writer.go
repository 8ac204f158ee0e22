package binary

import "math"

// writer is the encoder's scratch buffer (component I): append-only, owns
// its bytes outright (§5 "The encoder owns its output buffer outright").
type writer struct {
	buf []byte
}

func (w *writer) bytes() []byte { return w.buf }

func (w *writer) u8(b byte) { w.buf = append(w.buf, b) }

func (w *writer) raw(b []byte) { w.buf = append(w.buf, b...) }

// uleb32 appends the canonical minimal unsigned LEB128 encoding of v (§3
// invariant 4), grounded on the teacher's internal/leb128.EncodeUint32.
func (w *writer) uleb32(v uint32) { w.uleb64(uint64(v)) }

func (w *writer) uleb64(v uint64) {
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			w.buf = append(w.buf, b|0x80)
		} else {
			w.buf = append(w.buf, b)
			return
		}
	}
}

// sleb32/sleb64 append the canonical minimal signed LEB128 encoding,
// grounded on internal/leb128.EncodeInt32/EncodeInt64.
func (w *writer) sleb32(v int32) { w.sleb64(int64(v)) }

func (w *writer) sleb64(v int64) {
	for {
		b := byte(v & 0x7F)
		v >>= 7
		signBitSet := b&0x40 != 0
		if (v == 0 && !signBitSet) || (v == -1 && signBitSet) {
			w.buf = append(w.buf, b)
			return
		}
		w.buf = append(w.buf, b|0x80)
	}
}

func (w *writer) f32(v float32) {
	bits := math.Float32bits(v)
	w.buf = append(w.buf, byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24))
}

func (w *writer) f64(v float64) {
	bits := math.Float64bits(v)
	for i := 0; i < 8; i++ {
		w.buf = append(w.buf, byte(bits>>(8*i)))
	}
}

func (w *writer) name(s string) {
	w.uleb32(uint32(len(s)))
	w.buf = append(w.buf, s...)
}

// withLengthPrefix appends uleb32(len(body)) then body, matching the
// section/subsection encoding recipe of §4.I.
func (w *writer) withLengthPrefix(body []byte) {
	w.uleb32(uint32(len(body)))
	w.raw(body)
}
