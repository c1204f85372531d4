package models

import "time"

const RoleAdmin = "admin"
const RoleCustomer = "customer"

type User struct {
	ID        string    `json:"id" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Role      string    `json:"role,omitempty" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PublicProfile is the part of a user returned by login and /api/me.
func (u User) PublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
		"role":     u.Role,
	}
}
