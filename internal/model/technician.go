package model

// Technician visits a client to service machines.
type Technician struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"size:128;not null"`
	VisitType string `json:"visit_type" gorm:"size:64;not null"`
	ClientID  int64  `json:"client_id" gorm:"index;not null"`
}

func (Technician) TableName() string { return "technicians" }

// TechnicianInput is the create and full-update profile of a Technician.
type TechnicianInput struct {
	Name      string `json:"name" binding:"required"`
	VisitType string `json:"visit_type" binding:"required"`
	ClientID  int64  `json:"client_id" binding:"required,min=1"`
}

func (in TechnicianInput) Record(id int64) Technician {
	return Technician{ID: id, Name: in.Name, VisitType: in.VisitType, ClientID: in.ClientID}
}

func (in TechnicianInput) Columns() map[string]any {
	return map[string]any{
		"name":       in.Name,
		"visit_type": in.VisitType,
		"client_id":  in.ClientID,
	}
}
