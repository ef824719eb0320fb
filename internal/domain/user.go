package domain

import "time"

type UserRole string

const (
	UserRoleCustomer UserRole = "user"
	UserRoleAdmin    UserRole = "admin"
)

type User struct {
	ID           int32    `json:"id"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Addr         string   `json:"addr"`
	Email        string   `json:"email,omitempty"`
	Role         UserRole `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// ProfileComplete reports whether the user has filled in the contact
// details required before booking.
func (u *User) ProfileComplete() bool {
	return u.Name != "" && u.Phone != "" && u.Addr != ""
}
