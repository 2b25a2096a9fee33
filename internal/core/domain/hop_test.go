package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHopKind_String(t *testing.T) {
	tests := []struct {
		kind     HopKind
		expected string
	}{
		{HopCandidate, "candidate"},
		{HopNoResponse, "no_response"},
		{HopReserved, "reserved"},
		{HopKind(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestOutputLines(t *testing.T) {
	assert.Equal(t, "-> *", NoResponseLine)
	assert.Equal(t, "-> AS0 (Reserved)", ReservedLine)
	assert.Equal(t, "-> CLOUDFLARENET, US", AnnotatedLine("CLOUDFLARENET, US"))
	assert.Equal(t, "-> ?", AnnotatedLine(UnknownName))
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "AS13335", Token("AS13335").String())
}
