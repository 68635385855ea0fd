package rng

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestCrypto_Intn(t *testing.T) {
	c := Crypto{}
	found := make(map[int]bool)
	// it's possible this could fail, but not likely
	for i := 0; i < 1000; i++ {
		found[c.Intn(5)] = true
	}

	for i := 0; i < 5; i++ {
		assert.T(t, found[i], i)
	}

	assert.Equal(t, false, found[5])
}

func TestSeeded_Intn(t *testing.T) {
	first := NewSeeded(42)
	second := NewSeeded(42)

	for i := 0; i < 100; i++ {
		n := first.Intn(10)
		assert.Equal(t, n, second.Intn(10))
		assert.T(t, n >= 0 && n < 10, n)
	}
}
