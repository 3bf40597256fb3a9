/*
Copyright © 2025 crabcode

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package fixedstr

import (
	"fmt"
	"unicode/utf8"
)

// Builder incrementally assembles the content of a Str.
//
// Bytes [0, Len()) hold what has been appended so far; the strict and lossy
// append paths only ever write complete UTF-8 characters there. Bytes past
// the cursor may hold stale data from an earlier use after Clear; Finalize
// zeroes them before handing the storage over.
//
// The builder tracks a raw cursor, not a terminator. If an appended string
// contains an embedded null byte the builder keeps counting bytes after it,
// but once finalized the Str's visible content stops at that null. This is
// intentional: Len() of the builder and Len() of the finalized value only
// coincide when no null was appended.
type Builder struct {
	data []byte
	len  int
}

// NewBuilder creates an empty builder with the given capacity.
// Panics if capacity is less than one byte.
func NewBuilder(capacity int) *Builder {
	assertCapacity(capacity)
	return &Builder{data: make([]byte, capacity)}
}

// BuilderFromStr re-opens a Str for further appends. The builder gets its
// own copy of the storage and its cursor starts at the visible length, so
// bytes beyond the original terminator are not resurrected.
func BuilderFromStr(s Str) *Builder {
	assertCapacity(s.Cap())
	b := &Builder{data: make([]byte, s.Cap()), len: s.Len()}
	copy(b.data, s.EffectiveBytes())
	return b
}

// Cap returns the total capacity in bytes.
func (b *Builder) Cap() int { return len(b.data) }

// Len returns the number of bytes written so far.
func (b *Builder) Len() int { return b.len }

// Remaining returns the number of free bytes.
func (b *Builder) Remaining() int { return len(b.data) - b.len }

// IsEmpty reports whether nothing has been written.
func (b *Builder) IsEmpty() bool { return b.len == 0 }

// String returns the bytes written so far.
func (b *Builder) String() string { return string(b.data[:b.len]) }

// RawBytes returns a view of the full storage, including any bytes past the
// cursor that a later Finalize would zero.
func (b *Builder) RawBytes() []byte { return b.data }

// AppendString appends text in full, or not at all. When the text's byte
// length exceeds the remaining space it returns ErrCapacityExceeded and the
// builder is left unchanged.
func (b *Builder) AppendString(text string) error {
	if len(text) > b.Remaining() {
		return fmt.Errorf("%w: need %d bytes, %d available", ErrCapacityExceeded, len(text), b.Remaining())
	}
	copy(b.data[b.len:], text)
	b.len += len(text)
	return nil
}

// AppendRune appends the UTF-8 encoding of r, or nothing at all when it
// does not fit. Invalid runes are encoded as the replacement character, as
// everywhere in Go.
func (b *Builder) AppendRune(r rune) error {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	if n > b.Remaining() {
		return fmt.Errorf("%w: need %d bytes, %d available", ErrCapacityExceeded, n, b.Remaining())
	}
	copy(b.data[b.len:], buf[:n])
	b.len += n
	return nil
}

// AppendLossy appends the longest prefix of text that fits in the remaining
// space and ends on a character boundary. It reports whether the entire
// input was written.
func (b *Builder) AppendLossy(text string) bool {
	n := boundarySnap(text, b.Remaining())
	copy(b.data[b.len:], text[:n])
	b.len += n
	return n == len(text)
}

// Write appends raw bytes, implementing io.Writer. As much as fits is
// copied; a short write returns ErrCapacityExceeded along with the number
// of bytes written.
//
// Write performs no UTF-8 validation. Content fed through it should be
// finalized with FinalizeUnchecked, or inspected through the checked views.
func (b *Builder) Write(p []byte) (int, error) {
	n := len(p)
	if r := b.Remaining(); n > r {
		n = r
	}
	copy(b.data[b.len:], p[:n])
	b.len += n
	if n < len(p) {
		return n, fmt.Errorf("%w: need %d bytes, wrote %d", ErrCapacityExceeded, len(p), n)
	}
	return n, nil
}

// Truncate shortens the written content to at most n bytes, snapping down
// to a character boundary like Str.Truncate. The removed bytes are zeroed.
func (b *Builder) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= b.len {
		return
	}
	k := boundarySnap(b.data[:b.len], n)
	clear(b.data[k:b.len])
	b.len = k
}

// Clear resets the cursor without eagerly zeroing the written bytes.
// Zeroing is deferred to later overwrites and to Finalize, which always
// guarantees the padding invariant of the produced Str.
func (b *Builder) Clear() {
	b.len = 0
}

// Finalize zeroes the unwritten tail and transfers the storage into a Str
// whose visible content is what was appended, up to the first embedded null
// if there was one. It cannot fail: every checked append already kept the
// content valid.
//
// The builder is spent afterwards: it keeps working but has zero capacity,
// so further appends report ErrCapacityExceeded.
func (b *Builder) Finalize() Str {
	clear(b.data[b.len:])
	s := Str{data: b.data}
	b.data = nil
	b.len = 0
	return s
}

// FinalizeUnchecked transfers the storage without zero-padding or any other
// re-checking. It is meant for callers that bypassed the checked appends,
// filled the storage through Write or RawBytes, and assert the invariants
// themselves. Like Finalize it leaves the builder spent.
func (b *Builder) FinalizeUnchecked() Str {
	s := Str{data: b.data}
	b.data = nil
	b.len = 0
	return s
}
