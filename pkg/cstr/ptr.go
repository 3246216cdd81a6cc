package cstr

import "unsafe"

// Ptr returns the address of the first byte of the NUL-terminated
// buffer, suitable for passing to any function that expects a
// C-compatible string. For constants built by cstr-gen the address is
// stable for the entire process; for runtime-built values it stays valid
// while the CStr is reachable.
//
// Panics on the zero value, which has no buffer to point at.
func (c CStr) Ptr() *byte {
	if !c.IsValid() {
		panic("cstr: Ptr called on invalid CStr")
	}
	return unsafe.StringData(c.val)
}

// UnsafePointer returns Ptr as an unsafe.Pointer, for cgo and syscall
// call sites that need the cast anyway.
func (c CStr) UnsafePointer() unsafe.Pointer {
	return unsafe.Pointer(c.Ptr())
}

// FromPtr copies the bytes at p up to (not including) the first NUL into
// a new Go string. Returns "" for a nil pointer.
//
// p must point at a readable NUL-terminated buffer; the caller is
// responsible for the lifetime of the foreign memory.
func FromPtr(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}
