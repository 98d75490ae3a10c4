package ui

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageProgress(t *testing.T) {
	pp := NewPageProgress(io.Discard, 3)
	pp.Done(true)
	pp.Done(false)

	// closing with a page unaccounted for must not hang
	pp.Close()

	assert.EqualValues(t, 1, pp.bad.Load())
}
