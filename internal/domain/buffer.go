package domain

import "fmt"

// Buffer is one channel's capture region: a fixed-length array whose
// element width is chosen once at allocation and carried through
// registration, retrieval and conversion. The native driver writes
// into the backing slice during retrieval, so the slice must not be
// reallocated or resliced between registration and GetValues.
type Buffer struct {
	dtype DataType

	i8  []int8
	i16 []int16
	i32 []int32
	u32 []uint32
	i64 []int64
}

// NewBuffer allocates a zero-initialized buffer of the requested width
// and length.
func NewBuffer(dtype DataType, samples int) (*Buffer, error) {
	if samples < 0 {
		return nil, fmt.Errorf("negative sample count %d", samples)
	}
	b := &Buffer{dtype: dtype}
	switch dtype {
	case Int8:
		b.i8 = make([]int8, samples)
	case Int16:
		b.i16 = make([]int16, samples)
	case Int32:
		b.i32 = make([]int32, samples)
	case UInt32:
		b.u32 = make([]uint32, samples)
	case Int64:
		b.i64 = make([]int64, samples)
	default:
		return nil, fmt.Errorf("unsupported buffer datatype %v", dtype)
	}
	return b, nil
}

func (b *Buffer) DataType() DataType { return b.dtype }

func (b *Buffer) Len() int {
	switch b.dtype {
	case Int8:
		return len(b.i8)
	case Int16:
		return len(b.i16)
	case Int32:
		return len(b.i32)
	case UInt32:
		return len(b.u32)
	default:
		return len(b.i64)
	}
}

// ElementSize returns the width of one sample in bytes.
func (b *Buffer) ElementSize() int {
	switch b.dtype {
	case Int8:
		return 1
	case Int16:
		return 2
	case Int32, UInt32:
		return 4
	default:
		return 8
	}
}

// At returns sample i widened to int64.
func (b *Buffer) At(i int) int64 {
	switch b.dtype {
	case Int8:
		return int64(b.i8[i])
	case Int16:
		return int64(b.i16[i])
	case Int32:
		return int64(b.i32[i])
	case UInt32:
		return int64(b.u32[i])
	default:
		return b.i64[i]
	}
}

// Set stores v at index i, truncating to the buffer's element width.
func (b *Buffer) Set(i int, v int64) {
	switch b.dtype {
	case Int8:
		b.i8[i] = int8(v)
	case Int16:
		b.i16[i] = int16(v)
	case Int32:
		b.i32[i] = int32(v)
	case UInt32:
		b.u32[i] = uint32(v)
	default:
		b.i64[i] = v
	}
}

// Samples copies the buffer out as widened int64 values, in order.
func (b *Buffer) Samples() []int64 {
	out := make([]int64, b.Len())
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

// Backing-slice accessors used by the driver adapters to register the
// region with the native layer. Each returns nil unless the buffer has
// the matching width.

func (b *Buffer) Int8s() []int8     { return b.i8 }
func (b *Buffer) Int16s() []int16   { return b.i16 }
func (b *Buffer) Int32s() []int32   { return b.i32 }
func (b *Buffer) UInt32s() []uint32 { return b.u32 }
func (b *Buffer) Int64s() []int64   { return b.i64 }

// ChannelBuffers maps each enabled channel to its capture region.
type ChannelBuffers map[Channel]*Buffer

// Channels returns the populated channel identifiers in fixed A..H order.
func (cb ChannelBuffers) Channels() []Channel {
	out := make([]Channel, 0, len(cb))
	for _, ch := range AllChannels {
		if _, ok := cb[ch]; ok {
			out = append(out, ch)
		}
	}
	return out
}

// Overflow is the per-channel ADC saturation bitmask reported by value
// retrieval. Bit n corresponds to channel n.
type Overflow uint16

// Channel reports whether the given channel saturated during capture.
func (o Overflow) Channel(ch Channel) bool {
	return o&(1<<uint(ch)) != 0
}

// Any reports whether any channel saturated.
func (o Overflow) Any() bool { return o != 0 }
