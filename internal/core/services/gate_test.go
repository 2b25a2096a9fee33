package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/asroute/internal/core/domain"
)

func TestDedupGate_FirstTokenProcessed(t *testing.T) {
	var gate DedupGate

	assert.True(t, gate.ShouldProcess("AS13335"))
}

func TestDedupGate_EmptyFirstTokenSuppressed(t *testing.T) {
	var gate DedupGate

	assert.False(t, gate.ShouldProcess(""))
}

func TestDedupGate_SuppressesConsecutiveDuplicate(t *testing.T) {
	var gate DedupGate

	gate.Record("AS13335")

	assert.False(t, gate.ShouldProcess("AS13335"))
	assert.True(t, gate.ShouldProcess("AS174"))
	assert.True(t, gate.ShouldProcess(""))
}

func TestDedupGate_OnlyImmediatePrevious(t *testing.T) {
	var gate DedupGate
	sequence := []domain.Token{"AS1", "AS2", "AS1"}

	admitted := 0
	for _, token := range sequence {
		if gate.ShouldProcess(token) {
			gate.Record(token)
			admitted++
		}
	}

	assert.Equal(t, 3, admitted)
	assert.False(t, gate.ShouldProcess("AS1"))
}

func TestDedupGate_ShouldProcessHasNoSideEffect(t *testing.T) {
	var gate DedupGate
	gate.Record("AS1")

	assert.True(t, gate.ShouldProcess("AS2"))
	assert.True(t, gate.ShouldProcess("AS2"))
	assert.False(t, gate.ShouldProcess("AS1"))
}
