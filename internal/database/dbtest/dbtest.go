// Package dbtest provides database fixtures for tests.
package dbtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"

	"github.com/emilythestrangee/qa-forum/backend/internal/config"
	"github.com/emilythestrangee/qa-forum/backend/internal/database"
)

// NewSQLite opens a migrated, private in-memory SQLite database that is
// closed when the test ends.
func NewSQLite(t testing.TB) database.Service {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%s?mode=memory&cache=shared&_foreign_keys=1", name, uuid.NewString()[:8])

	// A single connection keeps every query on the same in-memory database.
	svc, err := database.Open(sqlite.Open(dsn), config.DBConfig{MaxOpenConns: 1, MaxIdleConns: 1})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := svc.Migrate(); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}
