package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault_KnownType(t *testing.T) {
	c := Default()

	rt, err := c.Get("deluxe")

	assert.NoError(t, err)
	assert.Equal(t, "Deluxe", rt.DisplayName)
	assert.Equal(t, 30500.0, rt.NightlyRate)
	assert.Equal(t, 2, rt.MaxOccupancy)
}

func TestDefault_UnknownType(t *testing.T) {
	_, err := Default().Get("penthouse")
	assert.ErrorIs(t, err, ErrUnknownRoomType)
}

func TestList_SortedByID(t *testing.T) {
	types := Default().List()

	assert.Len(t, types, 5)
	for i := 1; i < len(types); i++ {
		assert.Less(t, types[i-1].ID, types[i].ID)
	}
}
