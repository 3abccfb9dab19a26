package model

import "time"

// Maintenance is one technician visit to a machine.
type Maintenance struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	MachineID    int64     `json:"machine_id" gorm:"index;not null"`
	TechnicianID int64     `json:"technician_id" gorm:"index;not null"`
	Type         string    `json:"type" gorm:"size:64;not null"`
	Date         time.Time `json:"date" gorm:"index;not null"`
	Notes        *string   `json:"notes"`
}

// TableName pins the table name.
func (Maintenance) TableName() string { return "maintenances" }

// MaintenanceInput is the create and full-update profile of a Maintenance.
type MaintenanceInput struct {
	MachineID    int64     `json:"machine_id" binding:"required,min=1"`
	TechnicianID int64     `json:"technician_id" binding:"required,min=1"`
	Type         string    `json:"type" binding:"required"`
	Date         time.Time `json:"date" binding:"required"`
	Notes        *string   `json:"notes"`
}

func (in MaintenanceInput) Record(id int64) Maintenance {
	return Maintenance{
		ID:           id,
		MachineID:    in.MachineID,
		TechnicianID: in.TechnicianID,
		Type:         in.Type,
		Date:         in.Date,
		Notes:        in.Notes,
	}
}

func (in MaintenanceInput) Columns() map[string]any {
	return map[string]any{
		"machine_id":    in.MachineID,
		"technician_id": in.TechnicianID,
		"type":          in.Type,
		"date":          in.Date,
		"notes":         in.Notes,
	}
}
