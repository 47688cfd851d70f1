package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shoppro/internal/domain/entity"
	domainerrors "shoppro/internal/domain/errors"
	"shoppro/internal/domain/repository"
	mockRepo "shoppro/internal/mocks/repository"
	mockService "shoppro/internal/mocks/service"
	"shoppro/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixture struct {
	service     usecase.AdminUsecase
	resolver    *mockService.MockAccountResolver
	accountRepo *mockRepo.MockAccountRepository
	listingRepo *mockRepo.MockListingRepository
	ratingRepo  *mockRepo.MockRatingRepository
	hasher      *mockService.MockPasswordHasher
}

func newTestAdminService(t *testing.T) *adminServiceFixture {
	f := &adminServiceFixture{
		resolver:    mockService.NewMockAccountResolver(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		listingRepo: mockRepo.NewMockListingRepository(t),
		ratingRepo:  mockRepo.NewMockRatingRepository(t),
		hasher:      mockService.NewMockPasswordHasher(t),
	}

	f.service = NewAdminService(AdminServiceParams{
		Resolver:    f.resolver,
		AccountRepo: f.accountRepo,
		ListingRepo: f.listingRepo,
		RatingRepo:  f.ratingRepo,
		Hasher:      f.hasher,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func testAdmin() *entity.Account {
	return &entity.Account{
		ID:       1,
		Username: "admin",
		FullName: "Site Admin",
		Role:     entity.RoleAdmin,
		Status:   entity.AccountStatusActive,
	}
}

func TestAdminService_ListUsers_GateRejectsNonAdmin(t *testing.T) {
	f := newTestAdminService(t)

	ctx := context.Background()
	f.resolver.EXPECT().ResolveAdmin(ctx, int64(7)).
		Return(nil, domainerrors.ErrUnauthorized.WrapMessage("admin gate rejected non-admin account"))

	output, err := f.service.ListUsers(ctx, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.Nil(t, output)
}

func TestAdminService_UpdateUser_AdminRoleImmutable(t *testing.T) {
	f := newTestAdminService(t)

	ctx := context.Background()
	admin := testAdmin()
	otherAdmin := &entity.Account{ID: 2, Username: "admin2", Role: entity.RoleAdmin, Status: entity.AccountStatusActive}

	f.resolver.EXPECT().ResolveAdmin(ctx, admin.ID).Return(admin, nil)
	f.accountRepo.EXPECT().FindByID(ctx, otherAdmin.ID).Return(otherAdmin, nil)

	role := entity.RoleBuyer
	_, err := f.service.UpdateUser(ctx, usecase.UpdateUserInput{
		ActorID: admin.ID,
		UserID:  otherAdmin.ID,
		Role:    &role,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAdminImmutable)
}

func TestAdminService_UpdateUser_RoleChangeTracksUploadFlag(t *testing.T) {
	f := newTestAdminService(t)

	ctx := context.Background()
	admin := testAdmin()
	buyer := &entity.Account{ID: 7, Username: "bob", Role: entity.RoleBuyer, Status: entity.AccountStatusActive}

	f.resolver.EXPECT().ResolveAdmin(ctx, admin.ID).Return(admin, nil)
	f.accountRepo.EXPECT().FindByID(ctx, buyer.ID).Return(buyer, nil)
	f.accountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	role := entity.RoleSeller
	output, err := f.service.UpdateUser(ctx, usecase.UpdateUserInput{
		ActorID: admin.ID,
		UserID:  buyer.ID,
		Role:    &role,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, output.Account.Role)
	assert.True(t, output.Account.CanUploadStock)
}

func TestAdminService_UpdateUser_DuplicateUsername(t *testing.T) {
	f := newTestAdminService(t)

	ctx := context.Background()
	admin := testAdmin()
	buyer := &entity.Account{ID: 7, Username: "bob", Email: "bob@example.com", Role: entity.RoleBuyer, Status: entity.AccountStatusActive}

	f.resolver.EXPECT().ResolveAdmin(ctx, admin.ID).Return(admin, nil)
	f.accountRepo.EXPECT().FindByID(ctx, buyer.ID).Return(buyer, nil)
	f.accountRepo.EXPECT().FindByUsername(ctx, "alice").
		Return(&entity.Account{ID: 8, Username: "alice"}, nil)

	username := "alice"
	_, err := f.service.UpdateUser(ctx, usecase.UpdateUserInput{
		ActorID:  admin.ID,
		UserID:   buyer.ID,
		Username: &username,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAdminService_DeleteUser_AdminImmutable(t *testing.T) {
	f := newTestAdminService(t)

	ctx := context.Background()
	admin := testAdmin()
	otherAdmin := &entity.Account{ID: 2, Role: entity.RoleAdmin, Status: entity.AccountStatusActive}

	f.resolver.EXPECT().ResolveAdmin(ctx, admin.ID).Return(admin, nil)
	f.accountRepo.EXPECT().FindByID(ctx, otherAdmin.ID).Return(otherAdmin, nil)

	err := f.service.DeleteUser(ctx, admin.ID, otherAdmin.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAdminImmutable)
}

func TestAdminService_PromoteToSeller_Success(t *testing.T) {
	f := newTestAdminService(t)

	ctx := context.Background()
	admin := testAdmin()
	buyer := &entity.Account{ID: 7, Username: "bob", Role: entity.RoleBuyer, Status: entity.AccountStatusActive}

	f.resolver.EXPECT().ResolveAdmin(ctx, admin.ID).Return(admin, nil)
	f.accountRepo.EXPECT().FindByID(ctx, buyer.ID).Return(buyer, nil)
	f.accountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	output, err := f.service.PromoteToSeller(ctx, usecase.PromoteInput{
		ActorID:  admin.ID,
		UserID:   buyer.ID,
		ShopName: "Bob's Goods",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, output.Account.Role)
	assert.True(t, output.Account.CanUploadStock)
	assert.Equal(t, "Bob's Goods", output.Account.ShopName)
}

func TestAdminService_PromoteToSeller_AlreadySeller(t *testing.T) {
	f := newTestAdminService(t)

	ctx := context.Background()
	admin := testAdmin()
	seller := &entity.Account{ID: 7, Role: entity.RoleSeller, Status: entity.AccountStatusActive}

	f.resolver.EXPECT().ResolveAdmin(ctx, admin.ID).Return(admin, nil)
	f.accountRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)

	_, err := f.service.PromoteToSeller(ctx, usecase.PromoteInput{ActorID: admin.ID, UserID: seller.ID})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadySeller)
}

func TestAdminService_ResetAdminPassword(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.ResetAdminPasswordInput
		wantErr error
	}{
		{
			name: "answer comparison ignores case",
			input: usecase.ResetAdminPasswordInput{
				ActorID:        1,
				UserID:         1,
				FullNameAnswer: "site admin",
				NewPassword:    "newsecret",
			},
		},
		{
			name: "other accounts are off limits",
			input: usecase.ResetAdminPasswordInput{
				ActorID:        1,
				UserID:         2,
				FullNameAnswer: "Site Admin",
				NewPassword:    "newsecret",
			},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name: "wrong answer",
			input: usecase.ResetAdminPasswordInput{
				ActorID:        1,
				UserID:         1,
				FullNameAnswer: "Somebody Else",
				NewPassword:    "newsecret",
			},
			wantErr: domainerrors.ErrSecurityAnswerMismatch,
		},
		{
			name: "password below minimum length",
			input: usecase.ResetAdminPasswordInput{
				ActorID:        1,
				UserID:         1,
				FullNameAnswer: "Site Admin",
				NewPassword:    "short",
			},
			wantErr: domainerrors.ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestAdminService(t)

			ctx := context.Background()
			admin := testAdmin()
			f.resolver.EXPECT().ResolveAdmin(ctx, admin.ID).Return(admin, nil)

			if tt.wantErr == nil {
				f.hasher.EXPECT().Hash("newsecret").Return("$2a$newhash", nil)
				f.accountRepo.EXPECT().Update(ctx, admin).Return(nil)
			}

			err := f.service.ResetAdminPassword(ctx, tt.input)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "$2a$newhash", admin.PasswordHash)
		})
	}
}

func TestAdminService_CreateSeller_TempPasswordFallback(t *testing.T) {
	f := newTestAdminService(t)

	ctx := context.Background()
	admin := testAdmin()

	f.resolver.EXPECT().ResolveAdmin(ctx, admin.ID).Return(admin, nil)
	f.accountRepo.EXPECT().FindByUsername(ctx, "shopkeeper").Return(nil, repository.ErrAccountNotFound)
	f.accountRepo.EXPECT().FindByEmail(ctx, "shop@example.com").Return(nil, repository.ErrAccountNotFound)
	f.hasher.EXPECT().Hash(tempSellerPassword).Return("$2a$temphash", nil)
	f.accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			account.ID = 9
		}).
		Return(nil)

	output, err := f.service.CreateSeller(ctx, usecase.CreateSellerInput{
		ActorID:  admin.ID,
		Username: "shopkeeper",
		Email:    "Shop@Example.com",
		ShopName: "Corner Shop",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, output.Account.Role)
	assert.True(t, output.Account.CanUploadStock)
	assert.Equal(t, "shop@example.com", output.Account.Email)
	assert.Equal(t, "$2a$temphash", output.Account.PasswordHash)
}

func TestAdminService_GetSeller_NoAdminGate(t *testing.T) {
	f := newTestAdminService(t)

	ctx := context.Background()
	seller := &entity.Account{ID: 7, Role: entity.RoleSeller, Status: entity.AccountStatusActive}

	// Only the seller lookup itself runs; no resolver call is expected.
	f.accountRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)

	output, err := f.service.GetSeller(ctx, seller.ID)

	require.NoError(t, err)
	assert.Equal(t, seller, output.Account)
}

func TestAdminService_GetSeller_BuyerIsNotASeller(t *testing.T) {
	f := newTestAdminService(t)

	ctx := context.Background()
	buyer := &entity.Account{ID: 7, Role: entity.RoleBuyer, Status: entity.AccountStatusActive}

	f.accountRepo.EXPECT().FindByID(ctx, buyer.ID).Return(buyer, nil)

	_, err := f.service.GetSeller(ctx, buyer.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSellerNotFound)
}

func TestAdminService_SellerAnalytics_AllSellers(t *testing.T) {
	f := newTestAdminService(t)

	ctx := context.Background()
	admin := testAdmin()
	sellers := []*entity.Account{
		{ID: 7, Role: entity.RoleSeller, Status: entity.AccountStatusActive},
		{ID: 8, Role: entity.RoleSeller, Status: entity.AccountStatusActive},
	}
	avg := 4.5

	f.resolver.EXPECT().ResolveAdmin(ctx, admin.ID).Return(admin, nil)
	f.accountRepo.EXPECT().FindByRole(ctx, entity.RoleSeller).Return(sellers, nil)
	f.listingRepo.EXPECT().CountBySeller(ctx, int64(7)).Return(int64(3), nil)
	f.ratingRepo.EXPECT().AverageScoreBySeller(ctx, int64(7)).Return(&avg, nil)
	f.listingRepo.EXPECT().CountBySeller(ctx, int64(8)).Return(int64(0), nil)
	f.ratingRepo.EXPECT().AverageScoreBySeller(ctx, int64(8)).Return(nil, nil)

	output, err := f.service.SellerAnalytics(ctx, admin.ID)

	require.NoError(t, err)
	require.Len(t, output.Analytics, 2)
	assert.Equal(t, int64(3), output.Analytics[0].ListingCount)
	assert.Equal(t, &avg, output.Analytics[0].AvgRating)
	assert.Nil(t, output.Analytics[1].AvgRating, "unrated seller has no average")
}

func TestAdminService_SellerAnalyticsByID_SelfAccess(t *testing.T) {
	f := newTestAdminService(t)

	ctx := context.Background()
	seller := &entity.Account{ID: 7, Role: entity.RoleSeller, Status: entity.AccountStatusActive}

	f.accountRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil).Twice()
	f.resolver.EXPECT().CanManage(seller, seller.ID).Return(true)
	f.listingRepo.EXPECT().CountBySeller(ctx, seller.ID).Return(int64(2), nil)
	f.ratingRepo.EXPECT().AverageScoreBySeller(ctx, seller.ID).Return(nil, nil)

	analytics, err := f.service.SellerAnalyticsByID(ctx, seller.ID, seller.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(2), analytics.ListingCount)
}

func TestAdminService_SellerAnalyticsByID_UnknownActorFoldsToUnauthorized(t *testing.T) {
	f := newTestAdminService(t)

	ctx := context.Background()
	f.accountRepo.EXPECT().FindByID(ctx, int64(999)).Return(nil, repository.ErrAccountNotFound)

	_, err := f.service.SellerAnalyticsByID(ctx, 999, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAdminService_SellerAnalyticsByID_ForeignBuyerRejected(t *testing.T) {
	f := newTestAdminService(t)

	ctx := context.Background()
	buyer := &entity.Account{ID: 5, Role: entity.RoleBuyer, Status: entity.AccountStatusActive}

	f.accountRepo.EXPECT().FindByID(ctx, buyer.ID).Return(buyer, nil)
	f.resolver.EXPECT().CanManage(buyer, int64(7)).Return(false)

	_, err := f.service.SellerAnalyticsByID(ctx, buyer.ID, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
