package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBraced(t *testing.T) {
	assert.Equal(t, "{}", Braced(nil))
	assert.Equal(t, "{}", Braced([]string{}))
	assert.Equal(t, "{jp}", Braced([]string{"jp"}))
	assert.Equal(t, "{jp,ana,leo}", Braced([]string{"jp", "ana", "leo"}))
}
