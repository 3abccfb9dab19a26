package model

// Machine is a rented coffee machine installed at a client location.
type Machine struct {
	ID                int64  `json:"id" gorm:"primaryKey"`
	Model             string `json:"model" gorm:"size:128;not null"`
	ClientID          int64  `json:"client_id" gorm:"index;not null"`
	ClientLocation    string `json:"client_location" gorm:"size:256;not null"`
	MonthlyRentalCost int64  `json:"monthly_rental_cost" gorm:"not null"`
}

// TableName overrides the gorm naming strategy.
func (Machine) TableName() string { return "machines" }

// MachineInput is the create and full-update profile of a Machine.
type MachineInput struct {
	Model             string `json:"model" binding:"required"`
	ClientID          int64  `json:"client_id" binding:"required,min=1"`
	ClientLocation    string `json:"client_location" binding:"required"`
	MonthlyRentalCost int64  `json:"monthly_rental_cost" binding:"min=0"`
}

func (in MachineInput) Record(id int64) Machine {
	return Machine{
		ID:                id,
		Model:             in.Model,
		ClientID:          in.ClientID,
		ClientLocation:    in.ClientLocation,
		MonthlyRentalCost: in.MonthlyRentalCost,
	}
}

func (in MachineInput) Columns() map[string]any {
	return map[string]any{
		"model":               in.Model,
		"client_id":           in.ClientID,
		"client_location":     in.ClientLocation,
		"monthly_rental_cost": in.MonthlyRentalCost,
	}
}
