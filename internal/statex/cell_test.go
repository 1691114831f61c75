package statex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell_GetReturnsInitial(t *testing.T) {
	c := NewCell(42)
	assert.Equal(t, 42, c.Get())
}

func TestCell_SetReplacesValue(t *testing.T) {
	c := NewCell("a")
	c.Set("b")
	assert.Equal(t, "b", c.Get())
}

func TestCell_SubscriberSeesNewValue(t *testing.T) {
	c := NewCell(0)

	var got []int
	c.Subscribe(func(v int) { got = append(got, v) })

	c.Set(1)
	c.Set(2)

	assert.Equal(t, []int{1, 2}, got)
}

func TestCell_SubscriberIsNotCalledWithCurrentValue(t *testing.T) {
	c := NewCell(7)

	called := false
	c.Subscribe(func(int) { called = true })

	assert.False(t, called)
}

func TestCell_ValueIsSwappedBeforeNotification(t *testing.T) {
	c := NewCell(0)

	var observed int
	c.Subscribe(func(int) { observed = c.Get() })

	c.Set(5)
	assert.Equal(t, 5, observed, "listener must read the already-updated cell")
}

func TestCell_UnsubscribeStopsNotifications(t *testing.T) {
	c := NewCell(0)

	var got []int
	unsub := c.Subscribe(func(v int) { got = append(got, v) })

	c.Set(1)
	unsub()
	c.Set(2)

	require.Equal(t, []int{1}, got)

	// unsubscribe is idempotent
	unsub()
	c.Set(3)
	assert.Equal(t, []int{1}, got)
}

func TestCell_MultipleSubscribers(t *testing.T) {
	c := NewCell(0)

	var a, b int
	c.Subscribe(func(v int) { a = v })
	c.Subscribe(func(v int) { b = v })

	c.Set(9)
	assert.Equal(t, 9, a)
	assert.Equal(t, 9, b)
}
