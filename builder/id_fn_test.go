package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/algraphs/builder"
)

// TestIDFns verifies each IDFn implementation both for correct outputs on valid inputs
// and for panics on invalid inputs.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          func() builder.IDFn
		input       int
		want        int
		shouldPanic bool
	}{
		{"IdentityIDFn_zero", func() builder.IDFn { return builder.IdentityIDFn }, 0, 0, false},
		{"IdentityIDFn_multi", func() builder.IDFn { return builder.IdentityIDFn }, 123, 123, false},

		{"ReversedIDFn_first", func() builder.IDFn { return builder.ReversedIDFn(4) }, 0, 3, false},
		{"ReversedIDFn_last", func() builder.IDFn { return builder.ReversedIDFn(4) }, 3, 0, false},
		{"ReversedIDFn_outside", func() builder.IDFn { return builder.ReversedIDFn(4) }, 4, 0, true},
		{"ReversedIDFn_neg", func() builder.IDFn { return builder.ReversedIDFn(4) }, -1, 0, true},
		{"ReversedIDFn_badN", func() builder.IDFn { return builder.ReversedIDFn(0) }, 0, 0, true},

		{"StrideIDFn_two", func() builder.IDFn { return builder.StrideIDFn(2) }, 5, 10, false},
		{"StrideIDFn_badStride", func() builder.IDFn { return builder.StrideIDFn(0) }, 1, 0, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn()(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn()(tc.input))
		})
	}
}
