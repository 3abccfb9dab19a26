package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"cafes-backend/internal/auth"
	"cafes-backend/internal/model"
)

// Store groups the per-entity resources.
type Store interface {
	Clients() *Resource[model.Client]
	Suppliers() *Resource[model.Supplier]
	Supplies() *Resource[model.Supply]
	Machines() *Resource[model.Machine]
	Technicians() *Resource[model.Technician]
	Maintenances() *Resource[model.Maintenance]
	Consumptions() *Resource[model.Consumption]
	Users() *Users
	Ping(ctx context.Context) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db           *gorm.DB
	clients      *Resource[model.Client]
	suppliers    *Resource[model.Supplier]
	supplies     *Resource[model.Supply]
	machines     *Resource[model.Machine]
	technicians  *Resource[model.Technician]
	maintenances *Resource[model.Maintenance]
	consumptions *Resource[model.Consumption]
	users        *Users
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB, hasher *auth.Hasher) Store {
	return &gormStore{
		db:           db,
		clients:      NewResource[model.Client](db, OrderByID),
		suppliers:    NewResource[model.Supplier](db, OrderByID),
		supplies:     NewResource[model.Supply](db, OrderByID),
		machines:     NewResource[model.Machine](db, OrderByID),
		technicians:  NewResource[model.Technician](db, OrderByID),
		maintenances: NewResource[model.Maintenance](db, OrderByDateNewest),
		consumptions: NewResource[model.Consumption](db, OrderByDateNewest),
		users:        NewUsers(db, hasher),
	}
}

func (s *gormStore) Clients() *Resource[model.Client]           { return s.clients }
func (s *gormStore) Suppliers() *Resource[model.Supplier]       { return s.suppliers }
func (s *gormStore) Supplies() *Resource[model.Supply]          { return s.supplies }
func (s *gormStore) Machines() *Resource[model.Machine]         { return s.machines }
func (s *gormStore) Technicians() *Resource[model.Technician]   { return s.technicians }
func (s *gormStore) Maintenances() *Resource[model.Maintenance] { return s.maintenances }
func (s *gormStore) Consumptions() *Resource[model.Consumption] { return s.consumptions }
func (s *gormStore) Users() *Users                              { return s.users }

// Ping checks that the database answers.
func (s *gormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}
