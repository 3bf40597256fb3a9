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

package fixedstr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crabcode/fixed-str/pkg/fixedstr"
)

func TestBuilderAppendString(t *testing.T) {
	b := fixedstr.NewBuilder(10)
	require.NoError(t, b.AppendString("Hello"))
	assert.Equal(t, 5, b.Len())
	assert.Equal(t, 5, b.Remaining())
	assert.Equal(t, "Hello", b.String())
}

func TestBuilderAppendStringAtomicOnOverflow(t *testing.T) {
	b := fixedstr.NewBuilder(5)
	require.NoError(t, b.AppendString("Hi"))

	err := b.AppendString("too long")
	require.ErrorIs(t, err, fixedstr.ErrCapacityExceeded)

	// The failed append left the builder untouched.
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, "Hi", b.String())
}

func TestBuilderAppendRune(t *testing.T) {
	b := fixedstr.NewBuilder(5)
	require.NoError(t, b.AppendRune('A'))
	require.NoError(t, b.AppendRune('é'))
	require.NoError(t, b.AppendRune('!'))
	assert.Equal(t, "Aé!", b.String())

	// One free byte left, a four byte rune cannot fit.
	err := b.AppendRune('😊')
	require.ErrorIs(t, err, fixedstr.ErrCapacityExceeded)
	assert.Equal(t, "Aé!", b.String())
}

func TestBuilderAppendLossy(t *testing.T) {
	b := fixedstr.NewBuilder(5)

	assert.True(t, b.AppendLossy("Hello"))
	assert.False(t, b.AppendLossy(", world!"))

	s := b.Finalize()
	assert.Equal(t, "Hello", s.String())
}

func TestBuilderScenarioExactFitWithDroppedEmoji(t *testing.T) {
	b := fixedstr.NewBuilder(12)

	require.NoError(t, b.AppendString("Hello"))
	require.NoError(t, b.AppendRune(' '))

	// "world!" fits exactly, the trailing wave emoji does not.
	complete := b.AppendLossy("world! 👋")
	assert.False(t, complete)

	s := b.Finalize()
	assert.Equal(t, "Hello world!", s.String())
	assert.Equal(t, 12, s.Len())
	assert.Equal(t, 12, s.Cap())
}

func TestBuilderAppendLossyNeverSplitsCharacters(t *testing.T) {
	const input = "aé世🌍"
	for capacity := 1; capacity <= len(input); capacity++ {
		b := fixedstr.NewBuilder(capacity)
		b.AppendLossy(input)
		s := b.Finalize()
		_, err := s.Text()
		require.NoError(t, err, "capacity=%d", capacity)
	}
}

func TestBuilderEmbeddedNullQuirk(t *testing.T) {
	b := fixedstr.NewBuilder(10)
	require.NoError(t, b.AppendString("ab\x00cd"))

	// The builder counts raw bytes, the finalized value stops at the null.
	assert.Equal(t, 5, b.Len())

	s := b.Finalize()
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "ab", s.String())
	assert.Equal(t, []byte("cd"), s.RawBytes()[3:5])
}

func TestBuilderClearDefersZeroing(t *testing.T) {
	b := fixedstr.NewBuilder(10)
	require.NoError(t, b.AppendString("junk data!"))

	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.True(t, b.IsEmpty())

	// Stale bytes are still in the raw storage after Clear...
	assert.Equal(t, []byte("junk data!"), b.RawBytes())

	// ...but Finalize guarantees the padding invariant regardless.
	require.NoError(t, b.AppendString("ab"))
	s := b.Finalize()
	assert.Equal(t, "ab", s.String())
	assert.Equal(t, append([]byte("ab"), make([]byte, 8)...), s.RawBytes())
}

func TestBuilderTruncate(t *testing.T) {
	b := fixedstr.NewBuilder(10)
	require.NoError(t, b.AppendString("HelloWorld"))

	b.Truncate(5)
	assert.Equal(t, 5, b.Len())
	assert.Equal(t, "Hello", b.String())
	assert.Equal(t, make([]byte, 5), b.RawBytes()[5:])

	// Truncating to more than the current length does nothing.
	b.Truncate(8)
	assert.Equal(t, 5, b.Len())

	// Truncation inside a character snaps down to its start.
	b2 := fixedstr.NewBuilder(10)
	require.NoError(t, b2.AppendString("aé"))
	b2.Truncate(2)
	assert.Equal(t, "a", b2.String())
}

func TestBuilderFinalizeRoundTrip(t *testing.T) {
	b := fixedstr.NewBuilder(8)
	require.NoError(t, b.AppendString("abc"))
	s := b.Finalize()

	// Feeding the raw storage back through the checked byte-slice
	// constructor reproduces an equal value.
	raw := make([]byte, s.Cap())
	copy(raw, s.RawBytes())
	s2, err := fixedstr.StrFromBytes(raw)
	require.NoError(t, err)
	assert.True(t, s.Equal(s2))
	assert.Equal(t, s.RawBytes(), s2.RawBytes())
}

func TestBuilderSpentAfterFinalize(t *testing.T) {
	b := fixedstr.NewBuilder(5)
	require.NoError(t, b.AppendString("abc"))
	s := b.Finalize()
	assert.Equal(t, "abc", s.String())

	// The storage moved into the Str, the builder has no capacity left.
	assert.Equal(t, 0, b.Cap())
	assert.Equal(t, 0, b.Len())
	require.ErrorIs(t, b.AppendString("x"), fixedstr.ErrCapacityExceeded)
	assert.False(t, b.AppendLossy("x"))
}

func TestBuilderFromStr(t *testing.T) {
	s := fixedstr.New(10, "Hi")
	b := fixedstr.BuilderFromStr(s)

	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 8, b.Remaining())

	require.NoError(t, b.AppendString(" there"))
	out := b.Finalize()
	assert.Equal(t, "Hi there", out.String())

	// The source value is not aliased by the builder.
	assert.Equal(t, "Hi", s.String())
}

func TestBuilderFromStrDoesNotResurrectHiddenBytes(t *testing.T) {
	// Bytes after the terminator are only reachable through unchecked
	// construction; re-opening must not bring them back.
	s := fixedstr.StrFromBytesUnchecked([]byte{'a', 0, 'z'})
	b := fixedstr.BuilderFromStr(s)

	assert.Equal(t, 1, b.Len())
	assert.Equal(t, []byte{'a', 0, 0}, b.RawBytes())
}

func TestBuilderWrite(t *testing.T) {
	b := fixedstr.NewBuilder(5)

	n, err := b.Write([]byte("ab"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// A short write reports how much fit.
	n, err = b.Write([]byte("cdef"))
	require.ErrorIs(t, err, fixedstr.ErrCapacityExceeded)
	assert.Equal(t, 3, n)

	s := b.FinalizeUnchecked()
	assert.Equal(t, "abcde", s.String())
}

func TestBuilderFinalizeUncheckedSkipsPadding(t *testing.T) {
	b := fixedstr.NewBuilder(6)
	require.NoError(t, b.AppendString("stale!"))
	b.Clear()
	require.NoError(t, b.AppendString("ok"))

	// The unchecked transfer keeps the stale bytes; the caller asserted
	// the invariants, wrongly in this case, and the visible content runs
	// past the intended cursor.
	s := b.FinalizeUnchecked()
	assert.Equal(t, "okale!", s.String())
}
