package penalty_test

import (
	"testing"

	"github.com/katalvlaran/demedist/penalty"
	"github.com/stretchr/testify/assert"
)

// TestLadderOrdering checks that each rung dominates the one below it.
func TestLadderOrdering(t *testing.T) {
	assert.Less(t, penalty.Structural, penalty.Distributional)
	assert.LessOrEqual(t, penalty.PointCloudPair, penalty.Distributional)
	assert.Less(t, penalty.Distributional, penalty.Reject())
	assert.True(t, penalty.IsReject(penalty.Reject()))
	assert.False(t, penalty.IsReject(penalty.Distributional))
}
