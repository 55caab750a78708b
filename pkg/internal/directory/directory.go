package directory

import (
	"strings"

	"github.com/staylio/messaging/pkg/internal/database"
	"github.com/staylio/messaging/pkg/internal/models"
)

// Directory resolves user identity, roles and presence. The surrounding
// system owns user records; this service only reads them.
type Directory interface {
	GetUser(id uint) (models.Account, error)
	GetUserByName(name string) (models.Account, error)
	ListUsers(idx []uint) ([]models.Account, error)
}

var D Directory = localDirectory{}

func Use(impl Directory) {
	D = impl
}

// localDirectory reads the accounts mirror table kept in sync by the
// surrounding system.
type localDirectory struct{}

func (localDirectory) GetUser(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func (localDirectory) GetUserByName(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("LOWER(name) = ?", strings.ToLower(name)).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func (localDirectory) ListUsers(idx []uint) ([]models.Account, error) {
	var accounts []models.Account
	if len(idx) == 0 {
		return accounts, nil
	}
	if err := database.C.Where("id IN ?", idx).Find(&accounts).Error; err != nil {
		return accounts, err
	}
	return accounts, nil
}
