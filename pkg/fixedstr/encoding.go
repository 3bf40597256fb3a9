/*
Copyright © 2026 crabcode

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

// Str integrates with byte-oriented frameworks through two independent
// adapters: the text adapter carries the visible content only, the binary
// adapter carries the full fixed-width storage. Which one a framework picks
// decides whether capacity and padding travel with the value.

// MarshalText implements encoding.TextMarshaler. It emits the visible
// content and fails with ErrInvalidEncoding when the value holds invalid
// UTF-8, which is only possible through the unchecked construction paths.
func (s Str) MarshalText() ([]byte, error) {
	text, err := s.Text()
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The incoming text is
// written with Set semantics: truncated at a character boundary to the
// existing capacity, tail zeroed. A zero-value target adopts len(text) as
// its capacity; empty text on a zero-value target is rejected with ErrSize
// because there is no capacity to size the storage from.
func (s *Str) UnmarshalText(text []byte) error {
	if !utf8.Valid(text) {
		return ErrInvalidEncoding
	}
	if s.data == nil {
		if len(text) == 0 {
			return fmt.Errorf("%w: cannot size a zero-value Str from empty text", ErrSize)
		}
		s.data = make([]byte, len(text))
	}
	n := boundarySnap(text, len(s.data))
	copy(s.data, text[:n])
	clear(s.data[n:])
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. It emits a copy of the
// full storage, padding included, so the wire form always has exactly Cap()
// bytes.
func (s Str) MarshalBinary() ([]byte, error) {
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. A sized target
// requires exactly Cap() bytes (ErrSize otherwise); a zero-value target
// adopts len(data) as its capacity. The content passes the same validation
// as StrFromBytes. The incoming slice is copied, not retained.
func (s *Str) UnmarshalBinary(data []byte) error {
	if s.data != nil && len(data) != len(s.data) {
		return fmt.Errorf("%w: got %d bytes, capacity is %d", ErrSize, len(data), len(s.data))
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	parsed, err := StrFromBytes(buf)
	if err != nil {
		return err
	}
	s.data = parsed.data
	return nil
}
