package testparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	t.Parallel()
	tests := []struct {
		kind Kind
		want string
	}{
		{KindError, "ERROR"},
		{KindFailure, "FAILURE"},
		{Kind(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestPHPUnitParser_ImplementsParser(t *testing.T) {
	t.Parallel()
	var p Parser = &PHPUnitParser{}
	assert.Equal(t, "phpunit", p.Name())
}
