package model

// Supplier provides supplies.
type Supplier struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:128;not null"`
}

func (Supplier) TableName() string { return "suppliers" }

// SupplierInput is the create and full-update profile of a Supplier.
type SupplierInput struct {
	Name string `json:"name" binding:"required"`
}

func (in SupplierInput) Record(id int64) Supplier {
	return Supplier{ID: id, Name: in.Name}
}

func (in SupplierInput) Columns() map[string]any {
	return map[string]any{"name": in.Name}
}
