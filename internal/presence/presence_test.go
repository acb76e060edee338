package presence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)

	return &t
}

func TestElapsedDays(t *testing.T) {
	t.Run("open interval is clipped at the reference date", func(t *testing.T) {
		m := types.Member{ID: "a", Intervals: []types.MembershipInterval{
			{Start: date(2026, 1, 1)},
		}}

		require.Equal(t, 10, ElapsedDays(m, date(2026, 1, 10)))
	})

	t.Run("closed interval is clipped at its own end", func(t *testing.T) {
		m := types.Member{ID: "a", Intervals: []types.MembershipInterval{
			{Start: date(2026, 1, 1), End: datePtr(2026, 1, 5)},
		}}

		require.Equal(t, 5, ElapsedDays(m, date(2026, 3, 1)))
	})

	t.Run("sums multiple intervals across a gap", func(t *testing.T) {
		m := types.Member{ID: "a", Intervals: []types.MembershipInterval{
			{Start: date(2026, 1, 1), End: datePtr(2026, 1, 10)},
			{Start: date(2026, 2, 1)},
		}}

		// 10 days from the closed interval, 5 from the reopened one.
		require.Equal(t, 15, ElapsedDays(m, date(2026, 2, 5)))
	})

	t.Run("reference before any interval clamps to zero", func(t *testing.T) {
		m := types.Member{ID: "a", Intervals: []types.MembershipInterval{
			{Start: date(2026, 6, 1)},
		}}

		require.Equal(t, 0, ElapsedDays(m, date(2026, 1, 1)))
	})

	t.Run("single-day interval counts one day", func(t *testing.T) {
		m := types.Member{ID: "a", Intervals: []types.MembershipInterval{
			{Start: date(2026, 1, 1), End: datePtr(2026, 1, 1)},
		}}

		require.Equal(t, 1, ElapsedDays(m, date(2026, 1, 1)))
	})

	t.Run("wall clock components do not skew spans", func(t *testing.T) {
		m := types.Member{ID: "a", Intervals: []types.MembershipInterval{
			{Start: time.Date(2026, 1, 1, 23, 59, 0, 0, time.UTC)},
		}}

		require.Equal(t, 2, ElapsedDays(m, time.Date(2026, 1, 2, 0, 1, 0, 0, time.UTC)))
	})
}

func TestExperienced(t *testing.T) {
	veteran := types.Member{ID: "v", Intervals: []types.MembershipInterval{{Start: date(2026, 1, 1)}}}

	t.Run("presence threshold qualifies", func(t *testing.T) {
		require.True(t, Experienced(veteran, date(2026, 4, 1), 0, 60, 5))
	})

	t.Run("assignment threshold qualifies regardless of presence", func(t *testing.T) {
		require.True(t, Experienced(veteran, date(2026, 1, 2), 5, 60, 5))
	})

	t.Run("neither threshold reached", func(t *testing.T) {
		require.False(t, Experienced(veteran, date(2026, 1, 10), 2, 60, 5))
	})
}
