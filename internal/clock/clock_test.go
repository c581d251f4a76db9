package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodayDropsTimeOfDay(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	c := Fixed(time.Date(2026, 3, 10, 23, 59, 0, 0, jakarta))
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Today(c))
}

func TestParseDateAndDaysBetween(t *testing.T) {
	d, err := ParseDate("2026-03-01")
	require.NoError(t, err)
	today := DateOf(time.Date(2026, 3, 31, 15, 0, 0, 0, time.UTC))
	assert.Equal(t, 30, DaysBetween(d, today))
	assert.Equal(t, -30, DaysBetween(today, d))

	_, err = ParseDate("01/03/2026")
	assert.Error(t, err)
}

func TestDaysBetweenAcrossDST(t *testing.T) {
	// dates are UTC midnights, so a local DST shift cannot skew the count
	a, _ := ParseDate("2026-03-28")
	b, _ := ParseDate("2026-03-30")
	assert.Equal(t, 2, DaysBetween(a, b))
}

func TestSystemClock(t *testing.T) {
	c := System(time.UTC)
	assert.Equal(t, time.UTC, c.Now().Location())
	assert.WithinDuration(t, time.Now(), c.Now(), time.Second)
	assert.NotNil(t, System(nil).Now())
}
