package model

// User is an operator of the back office. The password hash never leaves
// the server.
type User struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string `json:"-" gorm:"size:72;not null"`
	Role         string `json:"role" gorm:"size:64;not null"`
}

func (User) TableName() string { return "users" }

// UserInput is the full-update profile of a User. It never touches the
// password.
type UserInput struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"required"`
}

func (in UserInput) Record(id int64) User {
	return User{ID: id, Name: in.Name, Role: in.Role}
}

func (in UserInput) Columns() map[string]any {
	return map[string]any{"name": in.Name, "role": in.Role}
}

// RegisterRequest is the body of a registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,max=72"`
	Role     string `json:"role" binding:"required"`
}

// LoginRequest is the body of a login.
type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}
