package orderController

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderNumber(t *testing.T) {
	assert.Equal(t, "64f1a2", orderNumber("64f1a2b3c4d5e6f708192a3b"))
	assert.Equal(t, "abc", orderNumber("abc"))
	assert.Equal(t, "", orderNumber(""))
}
