package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketStatusTransitions(t *testing.T) {
	assert.True(t, TicketOpen.CanTransition(TicketInProgress))
	assert.True(t, TicketOpen.CanTransition(TicketClosed))
	assert.False(t, TicketOpen.CanTransition(TicketResolved))

	assert.True(t, TicketInProgress.CanTransition(TicketResolved))
	assert.True(t, TicketInProgress.CanTransition(TicketClosed))
	assert.False(t, TicketInProgress.CanTransition(TicketOpen))

	// resolved 可以退回處理中重新處理
	assert.True(t, TicketResolved.CanTransition(TicketInProgress))
	assert.True(t, TicketResolved.CanTransition(TicketClosed))

	// closed 是終態
	assert.False(t, TicketClosed.CanTransition(TicketOpen))
	assert.False(t, TicketClosed.CanTransition(TicketInProgress))
	assert.False(t, TicketClosed.CanTransition(TicketResolved))
}
