package service

import (
	"testing"
	"time"

	"bloomfundr-api/internal/config"
)

func TestOrderCreateTimeout(t *testing.T) {
	old := config.C.Order.CreateTimeoutSec
	defer func() { config.C.Order.CreateTimeoutSec = old }()

	config.C.Order.CreateTimeoutSec = 5
	if got := orderCreateTimeout(); got != 5*time.Second {
		t.Errorf("orderCreateTimeout = %v, want 5s", got)
	}
}
