package model

import "time"

// Consumption records the supply a machine used in a month and its charge.
type Consumption struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	Date          time.Time `json:"date" gorm:"index;not null"`
	MachineID     int64     `json:"machine_id" gorm:"index;not null"`
	MonthlyCharge float64   `json:"monthly_charge" gorm:"not null"`
	SupplyID      int64     `json:"supply_id" gorm:"index;not null"`
}

func (Consumption) TableName() string { return "consumptions" }

// ConsumptionInput is the create profile of a Consumption.
type ConsumptionInput struct {
	Date          time.Time `json:"date" binding:"required"`
	MachineID     int64     `json:"machine_id" binding:"required,min=1"`
	MonthlyCharge float64   `json:"monthly_charge" binding:"min=0"`
	SupplyID      int64     `json:"supply_id" binding:"required,min=1"`
}

func (in ConsumptionInput) Record(id int64) Consumption {
	return Consumption{
		ID:            id,
		Date:          in.Date,
		MachineID:     in.MachineID,
		MonthlyCharge: in.MonthlyCharge,
		SupplyID:      in.SupplyID,
	}
}

func (in ConsumptionInput) Columns() map[string]any {
	return map[string]any{
		"date":           in.Date,
		"machine_id":     in.MachineID,
		"monthly_charge": in.MonthlyCharge,
		"supply_id":      in.SupplyID,
	}
}

// ConsumptionPatch is the partial-update profile of a Consumption. Nil
// fields keep their stored value.
type ConsumptionPatch struct {
	Date          *time.Time `json:"date"`
	MachineID     *int64     `json:"machine_id" binding:"omitempty,min=1"`
	MonthlyCharge *float64   `json:"monthly_charge" binding:"omitempty,min=0"`
	SupplyID      *int64     `json:"supply_id" binding:"omitempty,min=1"`
}

// Assignments returns the provided fields in a fixed column order.
func (p ConsumptionPatch) Assignments() []Assignment {
	var out []Assignment
	if p.Date != nil {
		out = append(out, Assignment{Column: ColumnDate, Value: *p.Date})
	}
	if p.MachineID != nil {
		out = append(out, Assignment{Column: ColumnMachineID, Value: *p.MachineID})
	}
	if p.MonthlyCharge != nil {
		out = append(out, Assignment{Column: ColumnMonthlyCharge, Value: *p.MonthlyCharge})
	}
	if p.SupplyID != nil {
		out = append(out, Assignment{Column: ColumnSupplyID, Value: *p.SupplyID})
	}
	return out
}
