package memio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegionReadWrite(t *testing.T) {
	r, err := NewRegion(4096)
	require.NoError(t, err)
	defer r.Close()

	assert.GreaterOrEqual(t, r.Len(), 4096)
	r.Bytes()[0] = 0x42
	assert.Equal(t, byte(0x42), r.Bytes()[0], "write to region should persist")
}

func TestAggregatorPublishAccess(t *testing.T) {
	agg := NewAggregator()
	region, err := NewRegion(4096)
	require.NoError(t, err)
	defer region.Close()

	require.NoError(t, agg.Publish(7, region))

	got, ok := agg.Access(7)
	require.True(t, ok)
	assert.Same(t, region, got)

	_, ok = agg.Access(8)
	assert.False(t, ok, "Access of unpublished slot should miss")
}

func TestAggregatorOutOfRange(t *testing.T) {
	agg := NewAggregator()
	assert.Error(t, agg.Publish(AggregatorSlots, nil), "Publish beyond AggregatorSlots should fail")
	_, ok := agg.Access(AggregatorSlots)
	assert.False(t, ok, "Access beyond AggregatorSlots should miss")
}
