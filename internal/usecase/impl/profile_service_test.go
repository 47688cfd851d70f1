package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shoppro/internal/domain/entity"
	"shoppro/internal/domain/repository"
	mockRepo "shoppro/internal/mocks/repository"
	"shoppro/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProfileService(t *testing.T) (usecase.ProfileUsecase, *mockRepo.MockProfileRepository) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProfileService(ProfileServiceParams{
		ProfileRepo: profileRepo,
		Logger:      logger,
	})

	return service, profileRepo
}

// The first read materializes an empty profile instead of failing.
func TestProfileService_Get_LazyCreate(t *testing.T) {
	service, profileRepo := newTestProfileService(t)

	ctx := context.Background()

	profileRepo.EXPECT().FindByAccount(ctx, int64(7)).Return(nil, repository.ErrProfileNotFound)
	profileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, profile *entity.Profile) {
			assert.Equal(t, int64(7), profile.AccountID)
			profile.ID = 3
		}).
		Return(nil)

	output, err := service.Get(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(3), output.Profile.ID)
	assert.Equal(t, int64(7), output.Profile.AccountID)
	assert.Empty(t, output.Profile.Name)
}

func TestProfileService_Get_Existing(t *testing.T) {
	service, profileRepo := newTestProfileService(t)

	ctx := context.Background()
	profile := &entity.Profile{ID: 3, AccountID: 7, Name: "Alice"}

	profileRepo.EXPECT().FindByAccount(ctx, int64(7)).Return(profile, nil)

	output, err := service.Get(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, profile, output.Profile)
}

func TestProfileService_Update_PartialFields(t *testing.T) {
	service, profileRepo := newTestProfileService(t)

	ctx := context.Background()
	profile := &entity.Profile{ID: 3, AccountID: 7, Name: "Alice", Address: "1 Main St"}

	profileRepo.EXPECT().FindByAccount(ctx, int64(7)).Return(profile, nil)
	profileRepo.EXPECT().Update(ctx, profile).Return(nil)

	darkMode := true
	output, err := service.Update(ctx, usecase.UpdateProfileInput{
		AccountID: 7,
		DarkMode:  &darkMode,
	})

	require.NoError(t, err)
	assert.True(t, output.Profile.DarkMode)
	assert.Equal(t, "Alice", output.Profile.Name, "untouched fields stay as they were")
	assert.Equal(t, "1 Main St", output.Profile.Address)
}

// Updating a missing profile creates it first, matching the lazy read.
func TestProfileService_Update_LazyCreate(t *testing.T) {
	service, profileRepo := newTestProfileService(t)

	ctx := context.Background()

	profileRepo.EXPECT().FindByAccount(ctx, int64(7)).Return(nil, repository.ErrProfileNotFound)
	profileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	profileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)

	name := "Alice"
	output, err := service.Update(ctx, usecase.UpdateProfileInput{AccountID: 7, Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Alice", output.Profile.Name)
}
