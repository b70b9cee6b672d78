package store

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/trainlog-dev/trainlog/internal/models"
)

// newTestStore opens a fresh in-memory sqlite database per test. The DSN is
// named after the test so parallel tests do not share state.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = gdb.AutoMigrate(
		&models.User{},
		&models.Plan{},
		&models.Membership{},
		&models.Event{},
		&models.Run{},
	)
	require.NoError(t, err)

	return New(gdb)
}

func createTestUser(t *testing.T, s *Store, username, email string) models.User {
	t.Helper()

	user, err := s.Users.Create(username, email, "hashed-password")
	require.NoError(t, err)

	return user
}

func createTestPlan(t *testing.T, s *Store, owner models.User) models.Plan {
	t.Helper()

	plan, err := s.Plans.Create("Marathon", "Spring marathon build", time.Now().AddDate(0, 3, 0), 42.2, "km", owner.ID)
	require.NoError(t, err)

	return plan
}

func createTestEvent(t *testing.T, s *Store, plan models.Plan) models.Event {
	t.Helper()

	event, err := s.Events.Create("Week1", time.Now().AddDate(0, 0, 7), 5, "km", plan.ID)
	require.NoError(t, err)

	return event
}
