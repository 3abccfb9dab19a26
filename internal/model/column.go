package model

// Column names one database column that callers may filter or assign on.
// The name is unexported so only the values declared here can exist.
type Column struct {
	name string
}

// Name returns the column name as used in SQL.
func (c Column) Name() string { return c.name }

// Assignment is one column/value pair of a partial update.
type Assignment struct {
	Column Column
	Value  any
}

// Filter and assignment columns.
var (
	ColumnClientID      = Column{"client_id"}
	ColumnMachineID     = Column{"machine_id"}
	ColumnSupplierID    = Column{"supplier_id"}
	ColumnTechnicianID  = Column{"technician_id"}
	ColumnSupplyID      = Column{"supply_id"}
	ColumnDate          = Column{"date"}
	ColumnMonthlyCharge = Column{"monthly_charge"}
)

// Input is implemented by the creation/full-update profile of an entity.
// Record builds the full record for the given id and Columns lists every
// column the profile writes.
type Input[T any] interface {
	Record(id int64) T
	Columns() map[string]any
}
