package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	n := Name("Python")

	assert.Equal(t, "Python", n.String())
	assert.Equal(t, "python", n.Key())
	assert.True(t, n.EqualFold("PYTHON"))
	assert.False(t, n.EqualFold("Pythons"))
	assert.True(t, n.Contains("yth"))
	assert.True(t, n.Contains("YTH"))
	assert.True(t, n.Contains(""))
	assert.False(t, n.Contains("java"))
}
