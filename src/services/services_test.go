package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/keshavagr273/ClassMate/src/models"
	"github.com/keshavagr273/ClassMate/src/notify"
)

// newTestDB opens a per-test in-memory SQLite database. The DSN is keyed by
// the test name so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.SkillDeclaration{},
		&models.SkillRequest{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@classmate.test", name),
		Password: "hashed",
		Branch:   "CSE",
		Semester: 5,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// fakeDispatcher records emitted events and can be made to fail.
type fakeDispatcher struct {
	events []notify.Event
	fail   bool
}

func (f *fakeDispatcher) Notify(_ context.Context, event notify.Event) error {
	if f.fail {
		return errors.New("notification service unavailable")
	}
	f.events = append(f.events, event)
	return nil
}
