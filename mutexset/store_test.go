package mutexset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katviz/seggraph/mutexset"
)

func TestInsertThenCheckIsSymmetric(t *testing.T) {
	s := mutexset.NewStore(4)
	require.False(t, s.Check(1, 2))

	s.Insert(1, 2)
	require.True(t, s.Check(1, 2))
	require.True(t, s.Check(2, 1))
	require.False(t, s.Check(0, 3))
}

func TestMergeFoldsConstraintsAndBackReferences(t *testing.T) {
	s := mutexset.NewStore(5)
	s.Insert(0, 3)
	s.Insert(1, 3)

	// Merge 3 into 4: node 4 should inherit 3's constraints, and nodes
	// 0 and 1 (which referenced 3) should now reference 4 instead.
	s.Merge(3, 4)

	require.True(t, s.Check(4, 0))
	require.True(t, s.Check(4, 1))
	require.False(t, s.Check(3, 0))
	require.Equal(t, 0, s.Count(3))
}

func TestMergeIntoSelfIsNoOp(t *testing.T) {
	s := mutexset.NewStore(3)
	s.Insert(0, 1)
	s.Merge(0, 0)
	require.True(t, s.Check(0, 1))
}
