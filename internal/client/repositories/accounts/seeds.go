package accounts

import (
	"github.com/dmitrijs2005/investprofile/internal/client/models"
	"github.com/dmitrijs2005/investprofile/internal/common"
)

// Built-in accounts. They exist before any registration, cannot be changed,
// and all sign in with common.SharedSeedPassword.
var (
	seedAdmin = models.Account{
		ID:       "admin",
		Name:     "Administrator",
		Email:    "admin@example.com",
		Password: common.SharedSeedPassword,
		Role:     models.RoleAdmin,
	}

	seedDoctors = []models.Account{
		{ID: "1", Name: "Dr. Ana Souza", Email: "doctor1@example.com", Password: common.SharedSeedPassword, Role: models.RoleDoctor,
			Image: "https://randomuser.me/api/portraits/women/11.jpg"},
		{ID: "2", Name: "Dr. Bruno Lima", Email: "doctor2@example.com", Password: common.SharedSeedPassword, Role: models.RoleDoctor,
			Image: "https://randomuser.me/api/portraits/men/12.jpg"},
		{ID: "3", Name: "Dr. Carla Mendes", Email: "doctor3@example.com", Password: common.SharedSeedPassword, Role: models.RoleDoctor,
			Image: "https://randomuser.me/api/portraits/women/13.jpg"},
	}
)

// SeedAdmin returns the single built-in admin account.
func SeedAdmin() models.Account { return seedAdmin }

// SeedDoctors returns a copy of the built-in doctor accounts.
func SeedDoctors() []models.Account {
	return append([]models.Account(nil), seedDoctors...)
}

// Seeds returns every built-in account in lookup precedence order:
// the admin first, then the doctors.
func Seeds() []models.Account {
	return append([]models.Account{seedAdmin}, seedDoctors...)
}
