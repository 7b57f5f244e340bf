package impl

import (
	"context"
	"log/slog"

	"registry/internal/domain/repository"
	"registry/internal/usecase"

	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	userRepo         repository.UserRepository
	subscriptionRepo repository.SubscriptionRepository
	memberCardRepo   repository.MemberCardRepository
	locationRepo     repository.LocationRepository
	logger           *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	userRepo repository.UserRepository,
	subscriptionRepo repository.SubscriptionRepository,
	memberCardRepo repository.MemberCardRepository,
	locationRepo repository.LocationRepository,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		memberCardRepo:   memberCardRepo,
		locationRepo:     locationRepo,
		logger:           logger,
	}
}

// GetStats aggregates the operational counters for the admin dashboard.
func (srv *adminService) GetStats(ctx context.Context) (*usecase.AdminStatsOutput, error) {
	totalUsers, err := srv.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	activeSubscriptions, err := srv.subscriptionRepo.CountActiveSubscriptions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active subscriptions")
	}

	issuedCards, err := srv.memberCardRepo.CountCards(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count member cards")
	}

	activeLocations, err := srv.locationRepo.CountActiveLocations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active locations")
	}

	return &usecase.AdminStatsOutput{
		TotalUsers:          totalUsers,
		ActiveSubscriptions: activeSubscriptions,
		IssuedCards:         issuedCards,
		ActiveLocations:     activeLocations,
	}, nil
}
