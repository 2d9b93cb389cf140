package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateWait(t *testing.T) {
	cases := map[int]int{
		0:  5,
		1:  8,
		2:  16,
		10: 80,
	}
	for position, want := range cases {
		assert.Equal(t, want, EstimateWait(position), "position %d", position)
	}
}

func TestEntryStatusTransitions(t *testing.T) {
	assert.True(t, EntryStatusQueued.CanSeat())
	assert.True(t, EntryStatusNotified.CanSeat())

	for _, s := range []EntryStatus{EntryStatusSeated, EntryStatusNoShow, EntryStatusCancelled, EntryStatusExpired} {
		assert.False(t, s.CanSeat(), string(s))
		assert.True(t, s.IsValid(), string(s))
	}

	assert.False(t, EntryStatus("LOST").IsValid())
}

func TestSameGuestIgnoresCase(t *testing.T) {
	e := &WaitlistEntry{Name: "Sarah Johnson"}
	assert.True(t, e.SameGuest("sarah johnson"))
	assert.True(t, e.SameGuest("SARAH JOHNSON"))
	assert.False(t, e.SameGuest("Sarah Jones"))
}

func TestCountQueued(t *testing.T) {
	entries := []*WaitlistEntry{
		{Status: EntryStatusQueued},
		{Status: EntryStatusNotified},
		{Status: EntryStatusQueued},
		{Status: EntryStatusSeated},
	}
	assert.Equal(t, 2, CountQueued(entries))
	assert.Equal(t, 0, CountQueued(nil))
}
