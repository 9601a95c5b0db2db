package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailName(t *testing.T) {
	assert.Equal(t, "Alice", EmailName("alice@x.com"))
	assert.Equal(t, "Alice", EmailName("alice"))
	assert.Equal(t, "", EmailName(""))
	assert.Equal(t, "@x.com", EmailName("@x.com"))
}
