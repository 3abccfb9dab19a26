//go:build integration
// +build integration

package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"

	"cafes-backend/config"
	"cafes-backend/internal/auth"
	"cafes-backend/internal/db"
	"cafes-backend/internal/model"
	"cafes-backend/internal/store"
)

// setupPostgres starts a PostgreSQL container and returns a config pointing
// at it.
func setupPostgres(t *testing.T) *config.Config {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("cafes"),
		postgres.WithUsername("cafes"),
		postgres.WithPassword("cafes"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return &config.Config{
		Database: config.DatabaseConfig{
			Driver:                 config.DriverPostgres,
			Host:                   host,
			Port:                   port.Int(),
			User:                   "cafes",
			Password:               "cafes",
			Name:                   "cafes",
			SSLMode:                "disable",
			MaxOpenConns:           5,
			MaxIdleConns:           5,
			ConnMaxLifetimeMinutes: 5,
			QueryTimeout:           5 * time.Second,
			AutoMigrate:            true,
		},
	}
}

func TestPostgresEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := setupPostgres(t)

	gormDB, err := db.Init(&cfg.Database)
	require.NoError(t, err)
	sqlDB, _ := gormDB.DB()
	t.Cleanup(func() { sqlDB.Close() })

	hasher, err := auth.NewHasher(bcrypt.MinCost)
	require.NoError(t, err)
	s := store.NewGormStore(gormDB, hasher)
	r := NewRouter(s, cfg)

	assert.Equal(t, http.StatusOK, doJSON(t, r, http.MethodGet, "/healthz", nil).Code)

	w := doJSON(t, r, http.MethodPost, "/api/suppliers", gin.H{"name": "Beans Ltd"})
	require.Equal(t, http.StatusCreated, w.Code)
	supplier := decode[model.Supplier](t, w)

	w = doJSON(t, r, http.MethodPost, "/api/supplies", gin.H{"type": "Coffee beans 1kg", "unit_price": 1200, "supplier_id": supplier.ID})
	require.Equal(t, http.StatusCreated, w.Code)
	supply := decode[model.Supply](t, w)

	w = doJSON(t, r, http.MethodGet, "/api/supplies/supplier/"+itoa(supplier.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []model.Supply{supply}, decode[[]model.Supply](t, w))

	w = doJSON(t, r, http.MethodPost, "/api/consumptions", gin.H{
		"date": "2025-04-01T00:00:00Z", "machine_id": 1, "monthly_charge": 80.25, "supply_id": supply.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	consumption := decode[model.Consumption](t, w)

	w = doJSON(t, r, http.MethodPatch, "/api/consumptions/"+itoa(consumption.ID), gin.H{"monthly_charge": 90.5})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 90.5, decode[model.Consumption](t, w).MonthlyCharge)

	w = doJSON(t, r, http.MethodPost, "/api/users/register", gin.H{"name": "ops", "password": "pw", "role": "admin"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/users/register", gin.H{"name": "ops", "password": "pw2", "role": "admin"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// The unique index rejects duplicates that bypass the pre-check.
	dup := model.User{Name: "ops", PasswordHash: "x", Role: "admin"}
	assert.ErrorIs(t, s.Users().Create(context.Background(), &dup), store.ErrConflict)

	w = doJSON(t, r, http.MethodPost, "/api/users/login", gin.H{"name": "ops", "password": "pw"})
	assert.Equal(t, http.StatusOK, w.Code)
}
