package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct{ upErr, downErr error }

func (f fakeMigrator) Up() error   { return f.upErr }
func (f fakeMigrator) Down() error { return f.downErr }

func restore() {
	pgxpoolNew = pgxpool.New
	sqlOpenDB = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn = func(f fs.FS, path string) (src.Driver, error) { return iofs.New(f, path) }
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// stubMigrationDeps 讓 withMigrator 走到 step 而不連線資料庫
func stubMigrationDeps(m migrateInstance) {
	sqlOpenDB = func(string, string) (*sql.DB, error) { return sql.Open("pgx", "") }
	postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, nil }
	iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, nil }
	migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) { return m, nil }
}

func TestNewPgxPool(t *testing.T) {
	t.Cleanup(restore)
	pgxpoolNew = func(context.Context, string) (*pgxpool.Pool, error) { return nil, errors.New("bad") }
	_, err := NewPgxPool(context.Background(), "url")
	require.Error(t, err)

	pgxpoolNew = func(context.Context, string) (*pgxpool.Pool, error) { return &pgxpool.Pool{}, nil }
	db, err := NewPgxPool(context.Background(), "url")
	require.NoError(t, err)
	require.NotNil(t, db)
}

func TestMigrationSetupErrors(t *testing.T) {
	for name, fn := range map[string]func(string) error{"up": RunMigrations, "down": RollbackAll} {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(restore)

			sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, errors.New("open") }
			require.ErrorContains(t, fn("url"), "open")

			stubMigrationDeps(fakeMigrator{})
			postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, errors.New("drv") }
			require.ErrorContains(t, fn("url"), "drv")

			stubMigrationDeps(fakeMigrator{})
			iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, errors.New("src") }
			require.ErrorContains(t, fn("url"), "src")

			stubMigrationDeps(fakeMigrator{})
			migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
				return nil, errors.New("mig")
			}
			require.ErrorContains(t, fn("url"), "mig")
		})
	}
}

func TestRunMigrations(t *testing.T) {
	t.Cleanup(restore)

	stubMigrationDeps(fakeMigrator{})
	require.NoError(t, RunMigrations("url"))

	stubMigrationDeps(fakeMigrator{upErr: migrate.ErrNoChange})
	require.NoError(t, RunMigrations("url"))

	stubMigrationDeps(fakeMigrator{upErr: errors.New("u")})
	require.Error(t, RunMigrations("url"))
}

func TestRollbackAll(t *testing.T) {
	t.Cleanup(restore)

	stubMigrationDeps(fakeMigrator{downErr: migrate.ErrNoChange})
	require.NoError(t, RollbackAll("url"))

	stubMigrationDeps(fakeMigrator{downErr: errors.New("d")})
	require.Error(t, RollbackAll("url"))
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.Contains(t, names, "1_create_users.up.sql")
	require.Contains(t, names, "2_create_templates.up.sql")
}
