package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscription_IsActiveAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		status       string
		periodEnd    time.Time
		wantIsActive bool
	}{
		{
			name:         "active status with future period end",
			status:       SubscriptionStatusActive,
			periodEnd:    now.Add(30 * 24 * time.Hour),
			wantIsActive: true,
		},
		{
			name:         "active status with past period end",
			status:       SubscriptionStatusActive,
			periodEnd:    now.Add(-time.Hour),
			wantIsActive: false,
		},
		{
			name:         "period end exactly now resolves to inactive",
			status:       SubscriptionStatusActive,
			periodEnd:    now,
			wantIsActive: false,
		},
		{
			name:         "non-active status with future period end",
			status:       "canceled",
			periodEnd:    now.Add(30 * 24 * time.Hour),
			wantIsActive: false,
		},
		{
			name:         "incomplete status is inactive",
			status:       "incomplete",
			periodEnd:    now.Add(time.Hour),
			wantIsActive: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := &Subscription{
				Status:           tt.status,
				CurrentPeriodEnd: tt.periodEnd,
			}
			assert.Equal(t, tt.wantIsActive, sub.IsActiveAt(now))
		})
	}
}

func TestSubscription_IsActiveAt_NilReceiver(t *testing.T) {
	var sub *Subscription
	assert.False(t, sub.IsActiveAt(time.Now()))
}

func TestMemberVerification_IsActiveAt_SubscriptionOverridesCardStatus(t *testing.T) {
	now := time.Now()

	// The joined subscription says expired even though the card itself still
	// carries status "active"; the subscription data must win.
	verification := &MemberVerification{
		MemberID:         "REG123456",
		Status:           SubscriptionStatusActive,
		CurrentPeriodEnd: now.Add(-24 * time.Hour),
	}
	assert.False(t, verification.IsActiveAt(now))

	verification.CurrentPeriodEnd = now.Add(24 * time.Hour)
	assert.True(t, verification.IsActiveAt(now))
}
