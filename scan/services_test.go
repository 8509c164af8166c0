package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceName(t *testing.T) {
	assert.Equal(t, "ssh", ServiceName(22))
	assert.Equal(t, "http", ServiceName(80))
	assert.Equal(t, "https", ServiceName(443))
	assert.Equal(t, "postgresql", ServiceName(5432))
}

func TestServiceNameUnknownPort(t *testing.T) {
	assert.Equal(t, "unknown", ServiceName(4444))
	assert.Equal(t, "unknown", ServiceName(65000))
}
