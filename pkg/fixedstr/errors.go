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

import "errors"

var (
	// ErrCapacityExceeded is returned by strict append and construction
	// paths when the input does not fit in the remaining space.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrInvalidEncoding is returned when stored or incoming bytes do not
	// form valid UTF-8 up to the terminator.
	ErrInvalidEncoding = errors.New("invalid utf-8 encoding")

	// ErrSize is returned when a byte slice has the wrong length for the
	// buffer it should fill.
	ErrSize = errors.New("invalid buffer size")

	// ErrNotZeroPadded is returned by checked byte-slice construction when
	// bytes after the first null terminator are not all zero.
	ErrNotZeroPadded = errors.New("buffer not zero-padded after terminator")
)

func assertCapacity(capacity int) {
	if capacity < 1 {
		panic("fixedstr: capacity must be at least one byte")
	}
}
