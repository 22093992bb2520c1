// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/fin"
)

func TestNew(t *testing.T) {
	x, err := fin.New(3, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, x.Value())
	assert.Equal(t, 5, x.Bound())
}

func TestNewOutOfRange(t *testing.T) {
	cases := []struct {
		name string
		i, n int
	}{
		{"negative index", -1, 5},
		{"at bound", 5, 5},
		{"above bound", 7, 5},
		{"zero bound", 0, 0},
		{"negative bound", 0, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fin.New(tc.i, tc.n)
			require.Error(t, err)
			assert.ErrorIs(t, err, fin.ErrOutOfRange)
		})
	}
}

func TestMust(t *testing.T) {
	x := fin.Must(0, 1)
	assert.Equal(t, 0, x.Value())
	assert.Equal(t, 1, x.Bound())
	assert.True(t, x.IsZero())

	assert.Panics(t, func() { fin.Must(1, 1) })
}

func TestClamp(t *testing.T) {
	cases := []struct {
		name      string
		i, m      int
		wantValue int
	}{
		{"below bound", 3, 7, 3},
		{"at bound", 7, 7, 7},
		{"above bound", 12, 7, 7},
		{"zero bound", 5, 0, 0},
		{"zero index", 0, 7, 0},
		{"negative index floors at zero", -4, 7, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x := fin.Clamp(tc.i, tc.m)
			assert.Equal(t, tc.wantValue, x.Value())
			assert.Equal(t, tc.m+1, x.Bound())
			assert.Less(t, x.Value(), x.Bound())
		})
	}
}

func TestClampNegativeBoundPanics(t *testing.T) {
	assert.Panics(t, func() { fin.Clamp(0, -1) })
}

func TestWeaken(t *testing.T) {
	x := fin.Must(4, 5)
	w := x.Weaken()
	assert.Equal(t, 4, w.Value())
	assert.Equal(t, 6, w.Bound())
}

func TestString(t *testing.T) {
	assert.Equal(t, "2/5", fin.Must(2, 5).String())
}
