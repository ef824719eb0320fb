package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarSelectableFor(t *testing.T) {
	t.Run("Available car always selectable", func(t *testing.T) {
		c := Car{ID: 1, Status: CarStatusAvailable}
		assert.True(t, c.SelectableFor(0))
		assert.True(t, c.SelectableFor(9))
	})

	t.Run("Maintenance car disabled for new booking", func(t *testing.T) {
		c := Car{ID: 1, Status: CarStatusMaintenance}
		assert.False(t, c.SelectableFor(0))
	})

	t.Run("Maintenance car selectable when it is the current car", func(t *testing.T) {
		c := Car{ID: 1, Status: CarStatusMaintenance}
		assert.True(t, c.SelectableFor(1))
		assert.False(t, c.SelectableFor(2))
	})

	t.Run("In Use car behaves like Maintenance", func(t *testing.T) {
		c := Car{ID: 3, Status: CarStatusInUse}
		assert.False(t, c.SelectableFor(0))
		assert.True(t, c.SelectableFor(3))
	})
}

func TestAnnotateSelectable(t *testing.T) {
	cars := []Car{
		{ID: 1, Status: CarStatusAvailable},
		{ID: 2, Status: CarStatusInUse},
		{ID: 3, Status: CarStatusMaintenance},
	}

	t.Run("New booking context", func(t *testing.T) {
		listings := AnnotateSelectable(cars, 0)
		assert.Len(t, listings, 3)
		assert.True(t, listings[0].Selectable)
		assert.False(t, listings[1].Selectable)
		assert.False(t, listings[2].Selectable)
		for _, l := range listings {
			assert.False(t, l.Current)
		}
	})

	t.Run("Editing context keeps current car selectable", func(t *testing.T) {
		listings := AnnotateSelectable(cars, 2)
		assert.True(t, listings[0].Selectable)
		assert.True(t, listings[1].Selectable)
		assert.True(t, listings[1].Current)
		assert.False(t, listings[2].Selectable)
	})
}

func TestChangeRequestStatusTerminal(t *testing.T) {
	assert.False(t, ChangeRequestStatusPending.Terminal())
	assert.True(t, ChangeRequestStatusApproved.Terminal())
	assert.True(t, ChangeRequestStatusRejected.Terminal())
}
