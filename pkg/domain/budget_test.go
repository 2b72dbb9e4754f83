package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidMonth(t *testing.T) {
	assert.True(t, ValidMonth("2025-02"))
	assert.False(t, ValidMonth("2025-2"))
	assert.False(t, ValidMonth("2025-13"))
	assert.False(t, ValidMonth("February"))
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2025-02-14"))
	assert.False(t, ValidDate("2025-02-30"))
	assert.False(t, ValidDate("14/02/2025"))
}
