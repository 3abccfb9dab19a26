package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cafes-backend/internal/model"
)

// A helper function to create a mock database connection.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{SkipDefaultTransaction: true, TranslateError: true})
	require.NoError(t, err)

	return gormDB, mock
}

func TestResource_ListWithFilterAndOrder(t *testing.T) {
	gormDB, mock := newTestDB(t)
	consumptions := NewResource[model.Consumption](gormDB, OrderByDateNewest)

	march := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "consumptions" WHERE "machine_id" = $1 ORDER BY date DESC, id DESC`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "machine_id", "monthly_charge", "supply_id"}).
			AddRow(2, march, 4, 80.5, 1).
			AddRow(1, feb, 4, 60.0, 1))

	items, err := consumptions.List(context.Background(), By(model.ColumnMachineID, 4))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ID)
	assert.Equal(t, 80.5, items[0].MonthlyCharge)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResource_ListEmptyIsNotNil(t *testing.T) {
	gormDB, mock := newTestDB(t)
	clients := NewResource[model.Client](gormDB, OrderByID)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "clients" ORDER BY id ASC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "phone", "email"}))

	items, err := clients.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResource_GetNotFound(t *testing.T) {
	gormDB, mock := newTestDB(t)
	clients := NewResource[model.Client](gormDB, OrderByID)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "clients" WHERE "clients"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "phone", "email"}))

	_, err := clients.Get(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResource_Replace(t *testing.T) {
	in := model.ClientInput{Name: "Acme", Address: "1 Main St", Phone: "555-0100", Email: "a@acme.test"}
	updateSQL := regexp.QuoteMeta(`UPDATE "clients" SET "address"=$1,"email"=$2,"name"=$3,"phone"=$4 WHERE id = $5`)

	testCases := []struct {
		name         string
		rowsAffected int64
		expectedErr  error
	}{
		{name: "Row exists", rowsAffected: 1, expectedErr: nil},
		{name: "Row missing", rowsAffected: 0, expectedErr: ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gormDB, mock := newTestDB(t)
			clients := NewResource[model.Client](gormDB, OrderByID)

			mock.ExpectExec(updateSQL).
				WithArgs("1 Main St", "a@acme.test", "Acme", "555-0100", int64(9)).
				WillReturnResult(sqlmock.NewResult(0, tc.rowsAffected))

			err := clients.Replace(context.Background(), 9, in.Columns())
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestResource_PatchWithoutFieldsIssuesNoStatement(t *testing.T) {
	gormDB, mock := newTestDB(t)
	consumptions := NewResource[model.Consumption](gormDB, OrderByDateNewest)

	_, err := consumptions.Patch(context.Background(), 1, model.ConsumptionPatch{}.Assignments())
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResource_PatchReadsWritesAndRereads(t *testing.T) {
	gormDB, mock := newTestDB(t)
	consumptions := NewResource[model.Consumption](gormDB, OrderByDateNewest)

	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "date", "machine_id", "monthly_charge", "supply_id"}
	selectSQL := regexp.QuoteMeta(`SELECT * FROM "consumptions" WHERE "consumptions"."id" = $1`)

	mock.ExpectQuery(selectSQL).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(3, date, 4, 50.0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "consumptions" SET "monthly_charge"=$1 WHERE id = $2`)).
		WithArgs(99.9, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(selectSQL).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(3, date, 4, 99.9, 2))

	charge := 99.9
	got, err := consumptions.Patch(context.Background(), 3, model.ConsumptionPatch{MonthlyCharge: &charge}.Assignments())
	require.NoError(t, err)
	assert.Equal(t, 99.9, got.MonthlyCharge)
	assert.Equal(t, int64(4), got.MachineID)
	assert.Equal(t, int64(2), got.SupplyID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResource_PatchMissingRow(t *testing.T) {
	gormDB, mock := newTestDB(t)
	consumptions := NewResource[model.Consumption](gormDB, OrderByDateNewest)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "consumptions" WHERE "consumptions"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	supply := int64(8)
	_, err := consumptions.Patch(context.Background(), 3, model.ConsumptionPatch{SupplyID: &supply}.Assignments())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResource_DeleteTwice(t *testing.T) {
	gormDB, mock := newTestDB(t)
	clients := NewResource[model.Client](gormDB, OrderByID)
	deleteSQL := regexp.QuoteMeta(`DELETE FROM "clients" WHERE "clients"."id" = $1`)

	mock.ExpectExec(deleteSQL).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(deleteSQL).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, clients.Delete(context.Background(), 3))
	assert.ErrorIs(t, clients.Delete(context.Background(), 3), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResource_ErrorClassification(t *testing.T) {
	testCases := []struct {
		name        string
		driverErr   error
		expectedErr error
	}{
		{
			name:        "Unreachable database",
			driverErr:   &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
			expectedErr: ErrConnection,
		},
		{
			name:        "Query timeout",
			driverErr:   context.DeadlineExceeded,
			expectedErr: ErrConnection,
		},
		{
			name:        "SQLite unique constraint",
			driverErr:   sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			expectedErr: ErrConflict,
		},
		{
			name:        "Unexpected driver error",
			driverErr:   errors.New("syntax error at or near"),
			expectedErr: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gormDB, mock := newTestDB(t)
			clients := NewResource[model.Client](gormDB, OrderByID)

			mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "clients"`)).WillReturnError(tc.driverErr)

			items, err := clients.List(context.Background())
			require.Error(t, err)
			assert.Nil(t, items)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NotErrorIs(t, err, ErrConnection)
				assert.NotErrorIs(t, err, ErrNotFound)
			}
		})
	}
}

func TestIsConnectionError(t *testing.T) {
	assert.True(t, IsConnectionError(driver.ErrBadConn))
	assert.True(t, IsConnectionError(context.DeadlineExceeded))
	assert.True(t, IsConnectionError(sql.ErrConnDone))
	assert.True(t, IsConnectionError(errors.New("sql: database is closed")))
	assert.False(t, IsConnectionError(errors.New("boom")))
}
