package runutil

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"kmap/internal/seq"
)

func TestEffectiveThreads(t *testing.T) {
	assert.Equal(t, 3, EffectiveThreads(3))
	assert.Equal(t, runtime.NumCPU(), EffectiveThreads(0))
	assert.Equal(t, runtime.NumCPU(), EffectiveThreads(-2))
}

func TestValidateK(t *testing.T) {
	assert.Empty(t, ValidateK(15, 1000))
	assert.Empty(t, ValidateK(4, 4))
	assert.Len(t, ValidateK(5, 4), 1)
	assert.Contains(t, ValidateK(5, 0)[0], "empty")
}

func TestReadStats(t *testing.T) {
	reads := []seq.Record{
		{ID: "a", Seq: "ACGTACGT"},
		{ID: "b", Seq: "AC"},
		{ID: "a", Seq: "ACGT"},
		{ID: "c", Seq: "A"},
	}
	short, dups := ReadStats(reads, 4, 0)
	assert.Equal(t, 2, short)
	assert.Equal(t, []string{"a"}, dups)
}

func TestLRUSetEvicts(t *testing.T) {
	s := NewLRUSet[int](2)
	assert.False(t, s.Add(1))
	assert.False(t, s.Add(2))
	assert.True(t, s.Add(1))
	assert.False(t, s.Add(3)) // evicts 2
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Add(2))
}
