// Package cstr provides static, NUL-terminated C-compatible strings for
// foreign-function boundaries.
//
// A CStr wraps a Go string that already carries its single trailing NUL
// byte. It exposes a stable pointer to the first byte and the length of
// the text excluding the terminator, which is exactly the shape expected
// by C APIs, syscalls, and WASM hosts that take a NUL-terminated byte
// string.
//
// # Construction
//
// Prefer generated constants (see cmd/cstr-gen) or Must with a string
// literal over manual initialization:
//
//	var hello = cstr.Must("Hello, world!")
//
//	openHandle(hello.Ptr(), hello.Len())
//
// cstr-gen emits package-level vars of the form
//
//	var HelloMsg = cstr.Static("Hello, world!\x00")
//
// where the argument is a single constant literal, so the bytes are laid
// out in the binary's read-only data segment and the pointer returned by
// Ptr is stable for the entire process lifetime. Values built at runtime
// with New or Must keep their pointer valid for as long as the CStr is
// reachable; package-level vars are reachable forever.
//
// # Interior NUL bytes
//
// A text containing an interior NUL byte cannot be represented: a C
// consumer would silently truncate it. New returns ErrInteriorNUL for
// such input, Must and Static panic, and cstr-gen rejects the manifest.
// There is no runtime failure mode beyond these construction checks.
//
// # Encoding
//
// The buffer holds the UTF-8 bytes of the Go string exactly as written,
// plus the terminator. No re-encoding or validation of the text happens;
// non-UTF-8 byte escapes pass through unchanged.
//
// # Concurrency
//
// CStr values are immutable and safe to share between goroutines without
// synchronization.
package cstr
