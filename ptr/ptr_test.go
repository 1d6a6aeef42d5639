// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeref(t *testing.T) {
	t.Run("will return the zero value", func(t *testing.T) {
		t.Run("if the reference is nil", func(t *testing.T) {
			if !assert.Zero(t, Deref[int](nil)) {
				return
			}
		})
	})

	t.Run("will return the referenced value", func(t *testing.T) {
		t.Run("if the reference is non-nil", func(t *testing.T) {
			if !assert.Equal(t, 7, Deref(Ref(7))) {
				return
			}
		})
	})
}

func TestOr(t *testing.T) {
	t.Run("will return the given reference", func(t *testing.T) {
		t.Run("if it is non-nil", func(t *testing.T) {
			v := Ref(7)

			if !assert.Same(t, v, Or(v)) {
				return
			}
		})
	})

	t.Run("will return a zero value reference", func(t *testing.T) {
		t.Run("if the given reference is nil", func(t *testing.T) {
			got := Or[int](nil)

			if !assert.NotNil(t, got) {
				return
			}
			if !assert.Zero(t, *got) {
				return
			}
		})
	})
}
