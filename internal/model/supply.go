package model

// Supply is a consumable (coffee, milk, cups) bought from a supplier.
// UnitPrice is in integer currency units.
type Supply struct {
	ID         int64  `json:"id" gorm:"primaryKey"`
	Type       string `json:"type" gorm:"size:128;not null"`
	UnitPrice  int64  `json:"unit_price" gorm:"not null"`
	SupplierID int64  `json:"supplier_id" gorm:"index;not null"`
}

// TableName pins the table name.
func (Supply) TableName() string { return "supplies" }

// SupplyInput is the create and full-update profile of a Supply.
type SupplyInput struct {
	Type       string `json:"type" binding:"required"`
	UnitPrice  int64  `json:"unit_price" binding:"min=0"`
	SupplierID int64  `json:"supplier_id" binding:"required,min=1"`
}

func (in SupplyInput) Record(id int64) Supply {
	return Supply{ID: id, Type: in.Type, UnitPrice: in.UnitPrice, SupplierID: in.SupplierID}
}

func (in SupplyInput) Columns() map[string]any {
	return map[string]any{
		"type":        in.Type,
		"unit_price":  in.UnitPrice,
		"supplier_id": in.SupplierID,
	}
}
