package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalescer_KeepsLatestOfBurst(t *testing.T) {
	loop := &fakeLoop{}
	c := NewCoalescer[string](loop.post)

	value := 0
	for i := 1; i <= 5; i++ {
		c.Post("count", func() { value = i })
	}

	require.Len(t, loop.queue, 1)
	assert.Equal(t, 1, c.Pending())
	assert.Equal(t, uint64(4), c.Merged())

	loop.runAll()
	assert.Equal(t, 5, value)
	assert.Zero(t, c.Pending())
}

func TestCoalescer_KeysAreIndependent(t *testing.T) {
	loop := &fakeLoop{}
	c := NewCoalescer[int](loop.post)

	var ran []int
	c.Post(1, func() { ran = append(ran, 1) })
	c.Post(2, func() { ran = append(ran, 2) })
	loop.runAll()

	assert.Equal(t, []int{1, 2}, ran)

	c.Post(1, func() { ran = append(ran, 10) })
	require.Len(t, loop.queue, 1)
	loop.runAll()
	assert.Equal(t, []int{1, 2, 10}, ran)
}

func TestCoalescer_DropsWorkAfterDestroy(t *testing.T) {
	loop := &fakeLoop{}
	c := NewCoalescer[string](loop.post)

	ran := false
	c.Post("status", func() { ran = true })
	c.Destroy()
	loop.runAll()
	assert.False(t, ran)

	c.Post("status", func() { ran = true })
	assert.Empty(t, loop.queue)
}

func TestCoalescer_SealKeepsWaitingTaskInPlace(t *testing.T) {
	loop := &fakeLoop{}
	c := NewCoalescer[string](loop.post)

	var ran []string
	c.Post("status", func() { ran = append(ran, "v1") })
	c.Seal()
	loop.post(func() { ran = append(ran, "marker") })
	c.Post("status", func() { ran = append(ran, "v2") })
	c.Post("status", func() { ran = append(ran, "v3") })

	require.Len(t, loop.queue, 3)
	assert.Equal(t, 2, c.Pending())
	assert.Equal(t, uint64(1), c.Merged())

	loop.runAll()
	assert.Equal(t, []string{"v1", "marker", "v3"}, ran)
	assert.Zero(t, c.Pending())
}

func TestCoalescer_IgnoresNilCallback(t *testing.T) {
	loop := &fakeLoop{}
	c := NewCoalescer[string](loop.post)
	c.Post("k", nil)
	assert.Empty(t, loop.queue)
}

func TestNewCoalescer_PanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { NewCoalescer[string](nil) })
}
