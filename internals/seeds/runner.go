package seeds

import (
	"log"
	"strings"

	"gorm.io/gorm"

	"mahotsav_backend/internals/seeds/admins"
)

// Run executes the seeders named in the comma-separated SEED value,
// e.g. SEED=admins or SEED=all.
func Run(db *gorm.DB, what string) {
	for _, name := range strings.Split(what, ",") {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "admins", "all":
			if err := admins.SeedCoreAdmins(db); err != nil {
				log.Printf("[ERROR] seed admins: %v", err)
			}
		case "":
		default:
			log.Printf("[WARN] unknown seeder %q, skipping", name)
		}
	}
}
