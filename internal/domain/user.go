// internal/domain/user.go
package domain

import "time"

// Role distinguishes administrators from customers.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// User is an identity record. Customers own exactly one Account;
// admins own none.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	NationalID   string    `json:"national_id"`
	PhoneNumber  string    `json:"phone_number"`
	PasswordHash string    `json:"-"`
	IsLocked     bool      `json:"is_locked"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser creates a new User instance with the given role.
func NewUser(name, nationalID, phone, passwordHash string, role Role) *User {
	return &User{
		Name:         name,
		NationalID:   nationalID,
		PhoneNumber:  phone,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
}
