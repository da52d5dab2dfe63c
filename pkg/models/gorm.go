package models

import "gorm.io/gorm"

func ModelsToAutoMigrate() []interface{} {
	return []interface{}{
		&SidebarSnapshot{},
	}
}

// Migrate creates or updates the tables of every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(ModelsToAutoMigrate()...)
}
