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
	"unicode/utf8"
)

// firstNull returns the offset of the first null byte in b,
// or len(b) if there is none.
func firstNull(b []byte) int {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return i
	}
	return len(b)
}

// isContinuation reports whether c is a UTF-8 continuation byte (10xxxxxx).
func isContinuation(c byte) bool {
	return c&0xC0 == 0x80
}

// boundarySnap returns the largest prefix length of b that does not exceed
// max and ends on a UTF-8 character boundary. It walks backwards from max
// over continuation bytes, which is at most three steps.
//
// b must already be valid UTF-8. Every truncating entry point of the package
// goes through this single routine so that all of them cut identically.
func boundarySnap[T ~string | ~[]byte](b T, max int) int {
	if max >= len(b) {
		return len(b)
	}
	if max < 0 {
		return 0
	}
	for max > 0 && isContinuation(b[max]) {
		max--
	}
	return max
}

// validPrefix returns the length of the longest prefix of b that is valid
// UTF-8, fits within max bytes and ends on a character boundary. Unlike
// boundarySnap it makes no assumption about b and decodes forward, so it is
// the entry point for untrusted bytes. Invalid trailing bytes are dropped,
// nothing is substituted.
func validPrefix(b []byte, max int) int {
	if max > len(b) {
		max = len(b)
	}
	n := 0
	for n < max {
		r, size := utf8.DecodeRune(b[n:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		if n+size > max {
			break
		}
		n += size
	}
	return n
}
