// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package configure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurator_Configure(t *testing.T) {
	t.Run("will return the base unchanged", func(t *testing.T) {
		t.Run("if no transforms are queued", func(t *testing.T) {
			got := New[int]().Configure(7)

			if !assert.Equal(t, 7, got) {
				return
			}
		})
	})

	t.Run("will apply transforms in insertion order", func(t *testing.T) {
		t.Run("if the transforms do not commute", func(t *testing.T) {
			addThenDouble := New[int]().
				Append(func(n *int) { *n += 1 }).
				Append(func(n *int) { *n *= 2 })

			doubleThenAdd := New[int]().
				Append(func(n *int) { *n *= 2 }).
				Append(func(n *int) { *n += 1 })

			if !assert.Equal(t, 8, addThenDouble.Configure(3)) {
				return
			}
			if !assert.Equal(t, 7, doubleThenAdd.Configure(3)) {
				return
			}
		})

		t.Run("if the result should match a manual fold", func(t *testing.T) {
			transforms := []Transform[int]{
				func(n *int) { *n += 5 },
				func(n *int) { *n *= 3 },
				func(n *int) { *n -= 2 },
			}

			c := New[int]()
			for _, transform := range transforms {
				c = c.Append(transform)
			}

			want := 4
			for _, transform := range transforms {
				transform(&want)
			}

			if !assert.Equal(t, want, c.Configure(4)) {
				return
			}
		})
	})

	t.Run("will not mutate the given base", func(t *testing.T) {
		t.Run("if the base is a value type", func(t *testing.T) {
			type counter struct {
				N int
			}

			c := Of(func(x *counter) { x.N = 100 })

			base := counter{N: 1}
			got := c.Configure(base)

			if !assert.Equal(t, counter{N: 1}, base) {
				return
			}
			if !assert.Equal(t, counter{N: 100}, got) {
				return
			}
		})
	})
}

func TestConfigurator_Append(t *testing.T) {
	t.Run("will not mutate the receiver", func(t *testing.T) {
		t.Run("if two chains are branched from a shared prefix", func(t *testing.T) {
			prefix := Of(func(n *int) { *n += 1 })

			left := prefix.Append(func(n *int) { *n *= 10 })
			right := prefix.Append(func(n *int) { *n *= 100 })

			if !assert.Equal(t, 1, prefix.Len()) {
				return
			}
			if !assert.Equal(t, 10, left.Configure(0)) {
				return
			}
			if !assert.Equal(t, 100, right.Configure(0)) {
				return
			}
		})
	})
}

func TestConfigurator_Set(t *testing.T) {
	t.Run("will discard previously queued transforms", func(t *testing.T) {
		c := New[int]().
			Append(func(n *int) { *n += 1 }).
			Append(func(n *int) { *n += 2 }).
			Set(func(n *int) { *n = 42 })

		if !assert.Equal(t, 1, c.Len()) {
			return
		}
		if !assert.Equal(t, 42, c.Configure(0)) {
			return
		}
	})
}

func TestConfigurator_Join(t *testing.T) {
	t.Run("will preserve the insertion order of both queues", func(t *testing.T) {
		a := New[int]().Append(func(n *int) { *n += 1 })
		b := New[int]().Append(func(n *int) { *n *= 2 })

		joined := a.Join(b)

		if !assert.Equal(t, 2, joined.Len()) {
			return
		}
		if !assert.Equal(t, 8, joined.Configure(3)) {
			return
		}
	})

	t.Run("will not mutate either queue", func(t *testing.T) {
		a := New[int]().Append(func(n *int) { *n += 1 })
		b := New[int]().Append(func(n *int) { *n *= 2 })

		_ = a.Join(b)

		if !assert.Equal(t, 1, a.Len()) {
			return
		}
		if !assert.Equal(t, 1, b.Len()) {
			return
		}
	})
}

func TestConfigurator_Mutate(t *testing.T) {
	t.Run("will mutate the given base in place", func(t *testing.T) {
		c := New[int]().
			Append(func(n *int) { *n += 1 }).
			Append(func(n *int) { *n *= 2 })

		n := 3
		c.Mutate(&n)

		if !assert.Equal(t, 8, n) {
			return
		}
	})
}
