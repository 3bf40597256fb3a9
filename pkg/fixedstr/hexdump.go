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
	"io"
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// DumpHex writes the uppercase hex representation of b to w, two digits per
// byte, bytes separated by spaces and grouped onto lines of group bytes
// each. A maxLines of zero or less means no line limit.
//
// Panics if group is less than one.
func DumpHex(w io.Writer, b []byte, group int, maxLines int) error {
	if group < 1 {
		panic("fixedstr: hex group must be at least one byte")
	}
	var buf [2]byte
	lines := 1
	for i, c := range b {
		if i > 0 {
			if i%group == 0 {
				if maxLines > 0 && lines >= maxLines {
					return nil
				}
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
				lines++
			} else {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
		}
		buf[0] = hexDigits[c>>4]
		buf[1] = hexDigits[c&0x0F]
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}

// FormatHex renders b as grouped uppercase hex, one line per group.
// Panics if group is less than one.
func FormatHex(b []byte, group int) string {
	var sb strings.Builder
	DumpHex(&sb, b, group, 0)
	return sb.String()
}

// Hex returns the whole storage, padding included, as a single line of
// uppercase hex.
func (s Str) Hex() string {
	if len(s.data) == 0 {
		return ""
	}
	return FormatHex(s.data, len(s.data))
}

// HexDump returns the whole storage as uppercase hex grouped eight bytes
// per line.
func (s Str) HexDump() string {
	if len(s.data) == 0 {
		return ""
	}
	return FormatHex(s.data, 8)
}
