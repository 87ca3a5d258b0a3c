package auth

import (
	"errors"
	"fmt"

	"github.com/rogerio-castellano/pharmalink/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Credential struct {
	Username string
	Password string
	Name     string
	Role     models.Role
}

// DefaultCredentials are the accounts the pharmacy ships with.
var DefaultCredentials = []Credential{
	{Username: "owner", Password: "admin", Name: "Mr. Boss", Role: models.RoleOwner},
	{Username: "attendee1", Password: "user1", Name: "John Doe", Role: models.RoleAttendee},
	{Username: "attendee2", Password: "user2", Name: "Jane Smith", Role: models.RoleAttendee},
	{Username: "attendee3", Password: "user3", Name: "Bob Jones", Role: models.RoleAttendee},
}

// Directory is a fixed set of users. Passwords are kept only as bcrypt hashes.
type Directory struct {
	users map[string]models.User
}

func NewDirectory(creds []Credential) (*Directory, error) {
	d := &Directory{users: make(map[string]models.User, len(creds))}
	for _, c := range creds {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password of %s: %w", c.Username, err)
		}
		d.users[c.Username] = models.User{
			Username:     c.Username,
			Name:         c.Name,
			Role:         c.Role,
			PasswordHash: string(hash),
		}
	}
	return d, nil
}

func (d *Directory) Authenticate(username, password string) (models.User, error) {
	user, ok := d.users[username]
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}
