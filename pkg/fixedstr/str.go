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
	"bytes"
	"fmt"
	"hash/fnv"
	"strings"
	"unicode/utf8"
)

// Str is a fixed-capacity, null-padded UTF-8 string.
//
// The storage is a byte slice of exactly Cap() bytes, allocated once at
// construction and never resized. The visible content runs from the start of
// the storage to the first null byte; everything after it is zero.
//
// Str is a thin handle around its storage, so assignment shares the
// underlying bytes just like assigning a byte slice does. Use Clone when an
// independent copy is needed.
//
// Values constructed through the unchecked paths may hold invalid UTF-8.
// For those, String and the text adapters are unspecified; Text revalidates
// and reports the problem instead.
type Str struct {
	data []byte
}

// New creates a Str of the given capacity holding text. Input that does not
// fit is truncated at the last complete UTF-8 character and the rest of the
// storage is zeroed. Embedded null bytes are copied verbatim; the first of
// them then terminates the visible content.
//
// Panics if capacity is less than one byte.
func New(capacity int, text string) Str {
	assertCapacity(capacity)
	s := Str{data: make([]byte, capacity)}
	n := boundarySnap(text, capacity)
	copy(s.data, text[:n])
	return s
}

// NewUnchecked creates a Str of the given capacity holding text, truncated
// by byte count only. No character boundary detection is performed, so the
// caller must guarantee that the text fits or that a cut mid-character is
// acceptable. Panics if capacity is less than one byte.
func NewUnchecked(capacity int, text string) Str {
	assertCapacity(capacity)
	s := Str{data: make([]byte, capacity)}
	copy(s.data, text)
	return s
}

// StrFromBytes adopts raw as the storage of a Str whose capacity is
// len(raw). The slice is taken over without copying and must not be modified
// by the caller afterwards.
//
// The content is validated: the prefix up to the first null byte must be
// valid UTF-8 (ErrInvalidEncoding) and every byte after it must be zero
// (ErrNotZeroPadded). An empty slice is rejected with ErrSize.
func StrFromBytes(raw []byte) (Str, error) {
	if len(raw) == 0 {
		return Str{}, fmt.Errorf("%w: empty buffer", ErrSize)
	}
	end := firstNull(raw)
	if !utf8.Valid(raw[:end]) {
		return Str{}, ErrInvalidEncoding
	}
	for _, c := range raw[end:] {
		if c != 0 {
			return Str{}, ErrNotZeroPadded
		}
	}
	return Str{data: raw}, nil
}

// StrFromBytesUnchecked adopts raw without any validation. The caller
// guarantees the padding and encoding invariants; checked operations on a
// value that violates them behave in unspecified ways, use Text or
// StringLossy to inspect such values safely.
func StrFromBytesUnchecked(raw []byte) Str {
	return Str{data: raw}
}

// Cap returns the storage capacity in bytes.
func (s Str) Cap() int { return len(s.data) }

// Len returns the length of the visible content in bytes, i.e. the offset
// of the first null byte, or Cap() if there is none.
func (s Str) Len() int { return firstNull(s.data) }

// IsEmpty reports whether the visible content is empty.
func (s Str) IsEmpty() bool { return len(s.data) == 0 || s.data[0] == 0 }

// RawBytes returns the full storage including padding. It is a view, not a
// copy; mutating it breaks the type's invariants.
func (s Str) RawBytes() []byte { return s.data }

// EffectiveBytes returns a view of the visible content, the bytes before
// the first null.
func (s Str) EffectiveBytes() []byte { return s.data[:s.Len()] }

// Clone returns a Str with its own copy of the storage.
func (s Str) Clone() Str {
	if s.data == nil {
		return Str{}
	}
	data := make([]byte, len(s.data))
	copy(data, s.data)
	return Str{data: data}
}

// Set replaces the content with text, truncated at the last complete UTF-8
// character that fits. The remainder of the storage is zeroed. Embedded null
// bytes are copied verbatim, so bytes written after one stay in the raw
// storage but are not part of the visible content.
func (s *Str) Set(text string) {
	n := boundarySnap(text, len(s.data))
	copy(s.data, text[:n])
	clear(s.data[n:])
}

// SetLossy replaces the content with the longest valid UTF-8 prefix of raw
// that fits. Invalid trailing bytes are dropped, nothing is substituted.
func (s *Str) SetLossy(raw []byte) {
	n := validPrefix(raw, len(s.data))
	copy(s.data, raw[:n])
	clear(s.data[n:])
}

// Clear zeroes the whole storage.
func (s *Str) Clear() {
	clear(s.data)
}

// Truncate shortens the visible content to at most n bytes. If n does not
// land on a character boundary it is snapped down to the nearest one, never
// up. The removed range is zeroed. Truncating to the current length or more
// is a no-op.
func (s *Str) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	end := s.Len()
	if n >= end {
		return
	}
	k := boundarySnap(s.data[:end], n)
	clear(s.data[k:end])
}

// String returns the visible content. For values built through checked
// paths this is always valid UTF-8; for unchecked values the bytes are
// returned as-is.
func (s Str) String() string {
	return string(s.EffectiveBytes())
}

// Text revalidates the visible content and returns it, or
// ErrInvalidEncoding when the bytes up to the terminator are not valid
// UTF-8. Use it for values of untrusted provenance.
func (s Str) Text() (string, error) {
	eb := s.EffectiveBytes()
	if !utf8.Valid(eb) {
		return "", ErrInvalidEncoding
	}
	return string(eb), nil
}

// StringLossy returns the visible content with any invalid byte run
// replaced by the Unicode replacement character.
func (s Str) StringLossy() string {
	return strings.ToValidUTF8(s.String(), "�")
}

// Equal reports whether the visible contents match. Padding beyond the
// terminator never takes part in the comparison.
func (s Str) Equal(o Str) bool {
	return bytes.Equal(s.EffectiveBytes(), o.EffectiveBytes())
}

// Compare orders two values lexicographically by their visible content,
// returning -1, 0 or 1 like bytes.Compare.
func (s Str) Compare(o Str) int {
	return bytes.Compare(s.EffectiveBytes(), o.EffectiveBytes())
}

// Hash64 returns an FNV-1a hash of the visible content. Two values that are
// Equal hash identically regardless of capacity or padding garbage.
func (s Str) Hash64() uint64 {
	h := fnv.New64a()
	h.Write(s.EffectiveBytes())
	return h.Sum64()
}

// GoString renders the value for debugging, distinguishing visible content
// from capacity. Invalid content falls back to a hex dump of the storage.
func (s Str) GoString() string {
	eb := s.EffectiveBytes()
	if utf8.Valid(eb) {
		return fmt.Sprintf("fixedstr.Str(cap=%d, %q)", s.Cap(), eb)
	}
	return fmt.Sprintf("fixedstr.Str(cap=%d, invalid utf-8)\n%s", s.Cap(), FormatHex(s.data, 16))
}
