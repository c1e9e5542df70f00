package users

import (
	"time"

	"github.com/dmitrijs2005/gymbro/internal/client/models"
)

// User is an account as kept by the devserver, password hash included.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Profile      models.Profile
	Goals        models.Goals
	CreatedAt    time.Time
}

// Public returns the wire representation of u without credentials.
func (u *User) Public() *models.User {
	return &models.User{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Profile: u.Profile,
		Goals:   u.Goals,
	}
}
