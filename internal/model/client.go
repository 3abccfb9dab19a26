package model

// Client is a customer renting one or more machines.
type Client struct {
	ID      int64  `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"size:128;not null"`
	Address string `json:"address" gorm:"size:256;not null"`
	Phone   string `json:"phone" gorm:"size:32;not null"`
	Email   string `json:"email" gorm:"size:128;not null"`
}

// TableName pins the table name.
func (Client) TableName() string { return "clients" }

// ClientInput is the create and full-update profile of a Client.
type ClientInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"required"`
}

func (in ClientInput) Record(id int64) Client {
	return Client{ID: id, Name: in.Name, Address: in.Address, Phone: in.Phone, Email: in.Email}
}

func (in ClientInput) Columns() map[string]any {
	return map[string]any{
		"name":    in.Name,
		"address": in.Address,
		"phone":   in.Phone,
		"email":   in.Email,
	}
}
