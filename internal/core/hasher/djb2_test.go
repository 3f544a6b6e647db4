package hasher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	h := Default()

	tests := []struct {
		token    string
		expected uint64
	}{
		{"", 0},
		{"a", 5381*33 + 5381 + 97},
		{"ab", 6223832},
		{"cat", 211612682},
		{"猫咪", 7244532},
	}

	for _, tc := range tests {
		t.Run(tc.token, func(t *testing.T) {
			assert.Equal(t, tc.expected, h.Hash(tc.token))
		})
	}
}

func TestHashWraps(t *testing.T) {
	h := Default()
	long := "abcdefghijklmnopqrstuvwxyz0123456789"

	var want uint64 = DefaultSeed
	for _, c := range long {
		want = want*34 + uint64(c)
	}
	assert.Equal(t, want, h.Hash(long))
}

func TestHashSeed(t *testing.T) {
	assert.Equal(t, uint64(1*34+97), New(1).Hash("a"))
	assert.NotEqual(t, Default().Hash("token"), New(7).Hash("token"))
	assert.Equal(t, uint64(0), New(7).Hash(""))
}
