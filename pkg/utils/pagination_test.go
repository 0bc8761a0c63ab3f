package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 2, TotalPages(25, 20))
	assert.Equal(t, 1, TotalPages(5, 0))
}

func TestPageBounds(t *testing.T) {
	start, end := PageBounds(1, 20, 25)
	assert.Equal(t, 0, start)
	assert.Equal(t, 20, end)

	start, end = PageBounds(2, 20, 25)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)

	// Pages past the end collapse to an empty slice.
	start, end = PageBounds(5, 20, 25)
	assert.Equal(t, 25, start)
	assert.Equal(t, 25, end)

	// Page numbers below 1 are treated as the first page.
	start, end = PageBounds(0, 20, 25)
	assert.Equal(t, 0, start)
	assert.Equal(t, 20, end)
}
