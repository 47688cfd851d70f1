// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"shoppro/config"
	"shoppro/internal/domain/lifecycle"
	"shoppro/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Stores bundles the two independent database connections. Identity holds
// accounts and credentials; Commerce holds everything else. They are
// separate primaries: no query ever joins across them, and no transaction
// spans both.
type Stores struct {
	Identity *gorm.DB
	Commerce *gorm.DB
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL clients for both stores.
func New(params Params) (*Stores, error) {
	identity, identitySQL, err := open(params, params.Config.Identity, "identity")
	if err != nil {
		return nil, err
	}

	commerce, commerceSQL, err := open(params, params.Config.Commerce, "commerce")
	if err != nil {
		return nil, err
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := identitySQL.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping identity store")
			}
			if err := commerceSQL.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping commerce store")
			}

			go monitorDBPool(monitorCtx, params.Logger.With(slog.String("store", "identity")), identitySQL, dbPoolMonitorInterval)
			go monitorDBPool(monitorCtx, params.Logger.With(slog.String("store", "commerce")), commerceSQL, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.Join(identitySQL.Close(), commerceSQL.Close())
		},
	})

	return &Stores{Identity: identity, Commerce: commerce}, nil
}

func open(params Params, conn *pgLib.DBConn, store string) (*gorm.DB, *sql.DB, error) {
	db, err := pgLib.New(conn)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to create %s store client", store)
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// Multi-step atomic operations go through txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config, store),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to get %s store sql.DB", store)
	}

	return db, sqlDB, nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
					slog.Int64("waitCountTotal", cur.WaitCount),
					slog.Duration("waitDurationTotal", cur.WaitDuration),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
