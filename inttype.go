package enumext

import (
	"math"
	"strconv"
)

// IntType selects the integer type that bounds a declaration's discriminant
// values. The zero value, IntAuto, defaults to the unsigned pointer-sized
// type (Uint).
type IntType int

const (
	IntAuto IntType = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Int
	Uint
)

// String returns the Go spelling of the type.
func (t IntType) String() string {
	switch t {
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Int:
		return "int"
	case Uint, IntAuto:
		return "uint"
	default:
		return "invalid"
	}
}

// Signed reports whether the type admits negative discriminants.
func (t IntType) Signed() bool {
	switch t {
	case Int8, Int16, Int32, Int64, Int:
		return true
	default:
		return false
	}
}

// Bits returns the type's width. Pointer-sized types report the width of the
// build platform.
func (t IntType) Bits() int {
	switch t {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32:
		return 32
	case Int64, Uint64:
		return 64
	default:
		return strconv.IntSize
	}
}

// bounds returns the representable discriminant range as carried int64 values.
// Unsigned 64-bit tops out at MaxInt64; see DESIGN.md for the rationale.
func (t IntType) bounds() (min, max int64) {
	bits := t.Bits()
	if t.Signed() {
		if bits == 64 {
			return math.MinInt64, math.MaxInt64
		}
		return -(1 << (bits - 1)), 1<<(bits-1) - 1
	}
	if bits == 64 {
		return 0, math.MaxInt64
	}
	return 0, 1<<bits - 1
}

// contains reports whether v is representable in the type.
func (t IntType) contains(v int64) bool {
	min, max := t.bounds()
	return v >= min && v <= max
}

// valid reports whether t is one of the declared constants.
func (t IntType) valid() bool {
	return t >= IntAuto && t <= Uint
}

// normalize resolves IntAuto to the default unsigned pointer-sized type.
func (t IntType) normalize() IntType {
	if t == IntAuto {
		return Uint
	}
	return t
}

// ParseIntType resolves a textual integer type specification. Both Go
// spellings ("int8" .. "uint64", "int", "uint") and the original short
// spellings ("i8" .. "u64", "isize", "usize") are accepted. 128-bit widths
// exist in the original type set but have no Go representation and are
// rejected.
func ParseIntType(s string) (IntType, error) {
	switch s {
	case "":
		return IntAuto, nil
	case "int8", "i8":
		return Int8, nil
	case "uint8", "u8":
		return Uint8, nil
	case "int16", "i16":
		return Int16, nil
	case "uint16", "u16":
		return Uint16, nil
	case "int32", "i32":
		return Int32, nil
	case "uint32", "u32":
		return Uint32, nil
	case "int64", "i64":
		return Int64, nil
	case "uint64", "u64":
		return Uint64, nil
	case "int", "isize":
		return Int, nil
	case "uint", "usize":
		return Uint, nil
	case "i128", "u128":
		return IntAuto, Errorf(CodeInvalidIntType, "%s is not representable in Go; widest supported type is 64 bits", s)
	default:
		return IntAuto, Errorf(CodeInvalidIntType, "unsupported integer type %q", s)
	}
}
