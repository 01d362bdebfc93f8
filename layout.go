package guid

import "encoding/binary"

// Size is the number of bytes in the binary form of a Guid.
const Size = 16

// Field identifies one of the four GUID fields.
type Field int

const (
	FieldData1 Field = iota // TimeLow
	FieldData2              // TimeMid
	FieldData3              // TimeHigh and version
	FieldData4              // clock sequence and node
)

// layout maps each field to its byte range in the big-endian 16-byte value.
var layout = [...]struct{ lo, hi int }{
	FieldData1: {0, 4},
	FieldData2: {4, 6},
	FieldData3: {6, 8},
	FieldData4: {8, 16},
}

// Range returns the half-open byte range [lo, hi) the field occupies within
// the 16-byte representation.
func (f Field) Range() (lo, hi int) {
	r := layout[f]
	return r.lo, r.hi
}

func (f Field) String() string {
	switch f {
	case FieldData1:
		return "data1"
	case FieldData2:
		return "data2"
	case FieldData3:
		return "data3"
	case FieldData4:
		return "data4"
	default:
		return "unknown"
	}
}

// slice returns the bytes of b covered by f.
func (f Field) slice(b []byte) []byte {
	lo, hi := f.Range()
	return b[lo:hi]
}

// fromBigEndian assembles a Guid from the big-endian 16-byte value.
func fromBigEndian(b *[Size]byte) Guid {
	var g Guid
	g.Data1 = binary.BigEndian.Uint32(FieldData1.slice(b[:]))
	g.Data2 = binary.BigEndian.Uint16(FieldData2.slice(b[:]))
	g.Data3 = binary.BigEndian.Uint16(FieldData3.slice(b[:]))
	copy(g.Data4[:], FieldData4.slice(b[:]))
	return g
}

// bigEndian returns the 16-byte value whose hex digits are the textual form.
func (g Guid) bigEndian() (b [Size]byte) {
	binary.BigEndian.PutUint32(FieldData1.slice(b[:]), g.Data1)
	binary.BigEndian.PutUint16(FieldData2.slice(b[:]), g.Data2)
	binary.BigEndian.PutUint16(FieldData3.slice(b[:]), g.Data3)
	copy(FieldData4.slice(b[:]), g.Data4[:])
	return b
}

// mixedEndian returns the Windows binary layout: the three integer fields
// little-endian, Data4 as is.
func (g Guid) mixedEndian() (b [Size]byte) {
	binary.LittleEndian.PutUint32(FieldData1.slice(b[:]), g.Data1)
	binary.LittleEndian.PutUint16(FieldData2.slice(b[:]), g.Data2)
	binary.LittleEndian.PutUint16(FieldData3.slice(b[:]), g.Data3)
	copy(FieldData4.slice(b[:]), g.Data4[:])
	return b
}

func fromMixedEndian(b []byte) Guid {
	var g Guid
	g.Data1 = binary.LittleEndian.Uint32(FieldData1.slice(b))
	g.Data2 = binary.LittleEndian.Uint16(FieldData2.slice(b))
	g.Data3 = binary.LittleEndian.Uint16(FieldData3.slice(b))
	copy(g.Data4[:], FieldData4.slice(b))
	return g
}
