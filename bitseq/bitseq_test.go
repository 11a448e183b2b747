package bitseq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitSequence_PushAndGet(t *testing.T) {
	b := New()
	bitsIn := []bool{true, false, true, true, false, false, true}
	for _, bit := range bitsIn {
		b.Push(bit)
	}

	require.Equal(t, len(bitsIn), b.Len())
	for i, bit := range bitsIn {
		assert.Equal(t, bit, b.Get(i), "bit %d", i)
	}
}

func TestBitSequence_SetIsIdempotent(t *testing.T) {
	b := NewSize(8)
	b.Set(3)
	b.Set(3)
	assert.True(t, b.Get(3))
	assert.Equal(t, 1, b.CountOnes())
}

func TestBitSequence_GetOutOfRange(t *testing.T) {
	b := NewSize(4)
	assert.False(t, b.Get(-1))
	assert.False(t, b.Get(4))
	assert.False(t, b.Get(1000))
}

func TestBitSequence_Resize(t *testing.T) {
	b := New()
	b.Push(true)
	b.Push(true)
	b.Resize(10, false)
	require.Equal(t, 10, b.Len())
	assert.True(t, b.Get(0))
	assert.True(t, b.Get(1))
	for i := 2; i < 10; i++ {
		assert.False(t, b.Get(i))
	}

	b.Resize(3, false)
	require.Equal(t, 3, b.Len())
	assert.True(t, b.Get(0))
}

func TestBitSequence_Ones(t *testing.T) {
	b := NewSize(10)
	for _, i := range []int{1, 3, 4, 8} {
		b.Set(i)
	}

	var got []int
	b.Ones(func(i int) bool {
		got = append(got, i)
		return true
	})
	assert.Equal(t, []int{1, 3, 4, 8}, got)
}

func TestBitSequence_OnesEarlyStop(t *testing.T) {
	b := NewSize(10)
	for _, i := range []int{1, 3, 4, 8} {
		b.Set(i)
	}

	var got []int
	b.Ones(func(i int) bool {
		got = append(got, i)
		return len(got) < 2
	})
	assert.Equal(t, []int{1, 3}, got)
}

func TestBitSequence_PushRangeGetRange(t *testing.T) {
	b := New()
	b.PushRange(0b1011, 4) // bit0=1, bit1=1, bit2=0, bit3=1
	require.Equal(t, 4, b.Len())
	assert.Equal(t, uint64(0b1011), b.GetRange(0, 4))
	assert.True(t, b.Get(0))
	assert.True(t, b.Get(1))
	assert.False(t, b.Get(2))
	assert.True(t, b.Get(3))
}

func TestBitSequence_CountOnesAcrossWords(t *testing.T) {
	b := NewSize(200)
	for i := 0; i < 200; i += 3 {
		b.Set(i)
	}
	want := 0
	for i := 0; i < 200; i += 3 {
		want++
	}
	assert.Equal(t, want, b.CountOnes())
}

func TestBitSequence_ByteSize(t *testing.T) {
	b := NewSize(1)
	assert.Equal(t, 8, b.ByteSize())
	b = NewSize(65)
	assert.Equal(t, 16, b.ByteSize())
}
