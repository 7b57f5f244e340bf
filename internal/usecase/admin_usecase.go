package usecase

import "context"

// AdminStatsOutput aggregates the operational counters shown on the admin
// dashboard.
type AdminStatsOutput struct {
	TotalUsers          int64 `json:"total_users"`
	ActiveSubscriptions int64 `json:"active_subscriptions"`
	IssuedCards         int64 `json:"issued_cards"`
	ActiveLocations     int64 `json:"active_locations"`
}

// AdminUsecase defines administrator-only operations. Authorization is the
// delivery layer's job (role claim on the access token); implementations
// assume the caller is already an admin.
type AdminUsecase interface {
	GetStats(ctx context.Context) (*AdminStatsOutput, error)
}
