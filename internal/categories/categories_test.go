package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList_HasTenDepartments(t *testing.T) {
	assert.Len(t, List, 10)
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("civil"))
	assert.True(t, IsValid("Clubs"))
	assert.False(t, IsValid("all"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("CIVIL"))
}

func TestColor_KnownAndFallback(t *testing.T) {
	assert.Equal(t, "#14b8a6", Color("civil"))
	assert.Equal(t, "#ccc", Color("astrology"))
}
