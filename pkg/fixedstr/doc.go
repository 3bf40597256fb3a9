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

// Package fixedstr provides a fixed-capacity, null-padded UTF-8 string type
// for binary-layout-sensitive contexts: on-disk and wire record headers,
// interop with null-terminated C strings, and buffers that must never grow.
//
// A Str owns exactly Cap() bytes. The visible content is the prefix up to the
// first null byte; everything from there to the end of the storage is kept
// zeroed. Input that does not fit is truncated at the last complete UTF-8
// character, never in the middle of one. Comparisons, ordering and hashing
// look at the visible content only, so padding never takes part in identity.
//
// A Builder accumulates content incrementally before the value is frozen into
// a Str. Appends are either strict (fail when the input does not fit) or
// lossy (write as much as fits, still on a character boundary).
//
// Both types share a single boundary-detection routine, so every entry point
// truncates identically.
package fixedstr
