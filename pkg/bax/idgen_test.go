package bax

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqSource returns 0,1,2,... modulo n; deterministic by construction.
type seqSource struct {
	next int
}

func (s *seqSource) Intn(n int) int {
	v := s.next % n
	s.next++
	return v
}

func TestIDGeneratorDeterministicSequence(t *testing.T) {
	gen := NewIDGenerator(&seqSource{})
	require.Equal(t, "ABCDEFGHIJKLMNOP", gen.Next())
	require.Equal(t, "QRSTUVWXYZABCDEF", gen.Next())
}

func TestIDGeneratorShape(t *testing.T) {
	gen := NewIDGenerator(rand.New(rand.NewSource(7)))
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		id := gen.Next()
		require.Len(t, id, 16)
		for _, c := range id {
			assert.True(t, c >= 'A' && c <= 'Z', "character %q out of range in %s", c, id)
		}
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
