package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTaka(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "৳0"},
		{450, "৳450"},
		{2500, "৳2,500"},
		{1234567, "৳1,234,567"},
		{-100, "-৳100"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTaka(tt.in))
	}
}
