//go:build integration

package integration_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"parcel-service/internal/pkg/config"
	pgpool "parcel-service/internal/pkg/postgres"
	"parcel-service/migrations"
	"parcel-service/pkg/logger/zap_adapter"
	"parcel-service/pkg/querier"
	"parcel-service/pkg/tx"
)

const (
	dbName     = "parcels_test"
	dbUser     = "parcels"
	dbPassword = "parcels"
)

var (
	pool            *pgxpool.Pool
	querierInstance *querier.Querier
	txManager       *tx.Manager
)

// Main поднимает PostgreSQL в контейнере, накатывает миграции и запускает тесты пакета.
// Вызывается из TestMain каждого пакета с интеграционными тестами.
func Main(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		log.Printf("failed to start postgres testcontainer: %v", err)
		return 1
	}
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate postgres container: %v", err)
		}
	}()

	host, err := pgContainer.Host(ctx)
	if err != nil {
		log.Printf("failed to get container host: %v", err)
		return 1
	}
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Printf("failed to get container port: %v", err)
		return 1
	}

	nopLogger := zap_adapter.NewNop()
	pool, err = pgpool.NewConnPool(ctx, nopLogger, &config.Database{
		Host:     host,
		Port:     port.Port(),
		User:     dbUser,
		Password: dbPassword,
		DBName:   dbName,
		SSLMode:  "disable",
	})
	if err != nil {
		log.Printf("failed to create pgx pool: %v", err)
		return 1
	}
	defer pool.Close()

	if err := pgpool.Migrate(ctx, nopLogger, pool, migrations.FS); err != nil {
		log.Printf("failed to apply migrations: %v", err)
		return 1
	}

	querierInstance = querier.New(pool, pgxv5.DefaultCtxGetter)
	txManager = tx.New(pool)

	return m.Run()
}

func GetQuerier() *querier.Querier {
	return querierInstance
}

func GetTxManager() *tx.Manager {
	return txManager
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if setupSql == "" {
		return
	}
	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE tracking_updates, parcels, couriers, customers RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}

// Fixtures два клиента и два курьера, на которые ссылаются посылки в тестах.
const Fixtures = `
	INSERT INTO customers (name, email, phone, address) VALUES
		('Alice Sender', 'alice@example.com', '+4915112345678', 'Berlin, Main st. 1'),
		('Bob Recipient', 'bob@example.com', '+4915187654321', 'Hamburg, Port st. 2');
	INSERT INTO couriers (id, name, email, phone, vehicle, availability) VALUES
		('CR001', 'Carl Courier', 'carl@example.com', '+4915100000001', 'Van', 'available'),
		('CR002', 'Dana Courier', 'dana@example.com', '+4915100000002', 'Bike', 'assigned');
`
