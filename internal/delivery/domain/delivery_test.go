package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{
		StatusPending, StatusInTransit, StatusDelivered, StatusDoorLock, StatusDamaged,
	} {
		assert.True(t, IsValidStatus(status), status)
	}

	for _, status := range []string{
		"", "pending", "Pending", "SHIPPED", "RETURNED", "IN TRANSIT", " DELIVERED",
	} {
		assert.False(t, IsValidStatus(status), status)
	}
}
