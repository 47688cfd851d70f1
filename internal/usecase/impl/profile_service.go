package impl

import (
	"context"
	"log/slog"

	deliverycontext "shoppro/internal/delivery/context"
	"shoppro/internal/domain/entity"
	"shoppro/internal/domain/repository"
	"shoppro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the account's profile, materializing an empty one on first
// read. The account id is a weak reference and is not resolved here.
func (srv *profileService) Get(ctx context.Context, accountID int64) (*usecase.ProfileOutput, error) {
	profile, err := srv.loadOrCreate(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return &usecase.ProfileOutput{Profile: profile}, nil
}

// Update applies a partial update, creating the profile if missing.
func (srv *profileService) Update(ctx context.Context, input usecase.UpdateProfileInput) (*usecase.ProfileOutput, error) {
	profile, err := srv.loadOrCreate(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		profile.Name = *input.Name
	}
	if input.Email != nil {
		profile.Email = *input.Email
	}
	if input.Phone != nil {
		profile.Phone = *input.Phone
	}
	if input.Address != nil {
		profile.Address = *input.Address
	}
	if input.DarkMode != nil {
		profile.DarkMode = *input.DarkMode
	}

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Int64("accountID", input.AccountID))

	return &usecase.ProfileOutput{Profile: profile}, nil
}

func (srv *profileService) loadOrCreate(ctx context.Context, accountID int64) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByAccount(ctx, accountID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	profile = &entity.Profile{AccountID: accountID}
	if err := srv.profileRepo.Create(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create profile lazily")
	}

	return profile, nil
}
