// SPDX-License-Identifier: MIT
// Package graphmap: identity-keyed node adapter.

package graphmap

import (
	"cmp"
	"unsafe"
)

// Ptr wraps a reference so it can serve as a GraphMap node key compared
// by address rather than by the referent's value. Two Ptr keys are the
// same node exactly when they wrap the same *T, which lets externally
// owned values (arena cells, interned records) act as graph nodes
// without defining equality or ordering on the values themselves.
//
// Ptr never owns the referent. The referent must stay alive, at a
// stable address, for as long as any key copy or any graph using it
// exists; violating that is a caller bug the container cannot detect.
//
// Ptr is comparable (map-key hashing uses the address), but it has no
// natural order, so construct graphs over Ptr keys with NewWith and
// ComparePtr.
type Ptr[T any] struct {
	ref *T
}

// PtrTo wraps v as an identity key.
func PtrTo[T any](v *T) Ptr[T] {
	return Ptr[T]{ref: v}
}

// Ref returns the wrapped reference.
func (p Ptr[T]) Ref() *T {
	return p.ref
}

// ComparePtr orders two identity keys by address: an arbitrary but
// stable total order, suitable as the canonicalization order for
// undirected graphs over Ptr keys.
func ComparePtr[T any](a, b Ptr[T]) int {
	return cmp.Compare(uintptr(unsafe.Pointer(a.ref)), uintptr(unsafe.Pointer(b.ref)))
}
