package models

type Role string

const (
	RoleOwner    Role = "Owner"
	RoleAttendee Role = "Attendee"
)

type User struct {
	Username     string `json:"username"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`
}
