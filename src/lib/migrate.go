package lib

import (
	"log/slog"
	"os"

	"github.com/keshavagr273/ClassMate/src/models"
)

// AutoMigrate runs all database migrations.
func AutoMigrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.SkillDeclaration{},
		&models.SkillRequest{},
	)

	if err != nil {
		slog.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	slog.Info("Database migration completed")
}
