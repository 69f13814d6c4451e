package gfx

import (
	"unsafe"
)

// Buffer uploads are byte slices in host order, viewed directly over the
// source data without copying.

func float32Bytes(src []float32) []byte {
	if len(src) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&src[0])), len(src)*4)
}

func uint32Bytes(src []uint32) []byte {
	if len(src) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&src[0])), len(src)*4)
}

// Float32s copies buffer data back into floats. Trailing bytes that do not
// make up a whole value are dropped.
func Float32s(b []byte) []float32 {
	dst := make([]float32, len(b)/4)
	copy(float32Bytes(dst), b)
	return dst
}

// Uint32s copies buffer data back into 32-bit indices.
func Uint32s(b []byte) []uint32 {
	dst := make([]uint32, len(b)/4)
	copy(uint32Bytes(dst), b)
	return dst
}
