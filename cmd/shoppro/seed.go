package main

import (
	"context"
	"log/slog"

	"shoppro/config"
	"shoppro/internal/domain/entity"
	domainerrors "shoppro/internal/domain/errors"
	"shoppro/internal/domain/repository"
	"shoppro/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type seedParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	AccountRepo repository.AccountRepository
	CouponRepo  repository.CouponRepository
	Hasher      service.PasswordHasher
}

// seed bootstraps the stores on startup: it guarantees one admin account in
// the identity store and, when enabled, a set of sample coupons in the
// commerce store. Both steps are idempotent; existing rows win.
func seed(ctx context.Context, params seedParams) error {
	cfg := params.Config.Seed
	if cfg == nil {
		return nil
	}

	if err := seedAdmin(ctx, cfg, params); err != nil {
		return err
	}

	if cfg.SampleCoupons {
		return seedCoupons(ctx, params)
	}

	return nil
}

func seedAdmin(ctx context.Context, cfg *config.SeedConfig, params seedParams) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil
	}

	admins, err := params.AccountRepo.FindByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return errors.Wrap(err, "failed to look up admin accounts")
	}
	if len(admins) > 0 {
		return nil
	}

	hash, err := params.Hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}

	admin := &entity.Account{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		FullName:     cfg.AdminFullName,
		Role:         entity.RoleAdmin,
		Status:       entity.AccountStatusActive,
	}

	if err := params.AccountRepo.Create(ctx, admin); err != nil {
		// A concurrent instance may have created the account between the
		// lookup and the insert.
		if errors.Is(err, domainerrors.ErrConflict) {
			params.Logger.Warn("Admin account already exists, skipping seed",
				slog.String("username", cfg.AdminUsername))
			return nil
		}

		return errors.Wrap(err, "failed to create admin account")
	}

	params.Logger.Info("Seeded admin account",
		slog.String("username", admin.Username),
		slog.Int64("id", admin.ID))

	return nil
}

func seedCoupons(ctx context.Context, params seedParams) error {
	samples := []entity.Coupon{
		{Code: "SAVE10", Discount: 10, Active: true},
		{Code: "SAVE20", Discount: 20, Active: true},
		{Code: "WELCOME5", Discount: 5, Active: true},
	}

	for _, sample := range samples {
		coupon := sample
		if err := params.CouponRepo.Create(ctx, &coupon); err != nil {
			if errors.Is(err, domainerrors.ErrCouponExists) {
				continue
			}

			return errors.Wrap(err, "failed to seed coupon "+sample.Code)
		}

		params.Logger.Info("Seeded coupon",
			slog.String("code", coupon.Code),
			slog.Int("discount", coupon.Discount))
	}

	return nil
}
