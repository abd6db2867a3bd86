package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeClock_AfterFunc(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Fake(start)

	var fired []string
	c.AfterFunc(200*time.Millisecond, func() { fired = append(fired, "b") })
	c.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "a") })
	stopped := c.AfterFunc(150*time.Millisecond, func() { fired = append(fired, "never") })

	assert.True(t, stopped.Stop())
	assert.False(t, stopped.Stop())
	assert.Equal(t, 2, c.Pending())

	c.Advance(99 * time.Millisecond)
	assert.Empty(t, fired)

	c.Advance(200 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, 0, c.Pending())
	assert.Equal(t, start.Add(299*time.Millisecond), c.Now())
}

func TestFakeClock_ImmediateCallback(t *testing.T) {
	c := Fake(time.Now())
	ran := false
	timer := c.AfterFunc(0, func() { ran = true })
	assert.True(t, ran)
	assert.False(t, timer.Stop())
}
