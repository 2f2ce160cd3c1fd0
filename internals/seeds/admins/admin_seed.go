package admins

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mahotsav_backend/internals/constants"
	"mahotsav_backend/internals/features/admins/model"
)

type seedAccount struct {
	AdminID    string
	Password   string
	Role       string
	Department string
}

var coreAccounts = []seedAccount{
	{AdminID: "sports", Password: "sports123", Role: constants.RoleCore, Department: "sports"},
	{AdminID: "culturals", Password: "culturals123", Role: constants.RoleCore, Department: "culturals"},
}

// SeedCoreAdmins inserts the two department accounts. Existing accounts
// are left untouched so re-running the seeder is safe.
func SeedCoreAdmins(db *gorm.DB) error {
	for _, acc := range coreAccounts {
		var existing model.AdminModel
		err := db.Where("admin_id = ?", acc.AdminID).First(&existing).Error
		if err == nil {
			log.Printf("[INFO] seed: admin %q already present, skipping", acc.AdminID)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(acc.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := model.AdminModel{
			AdminID:    acc.AdminID,
			Password:   string(hashed),
			Role:       acc.Role,
			Department: acc.Department,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Printf("[INFO] seed: admin %q created", acc.AdminID)
	}
	return nil
}
