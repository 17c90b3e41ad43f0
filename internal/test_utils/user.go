package test_utils

import (
	"context"
	"database/sql"
	"testing"

	"github.com/centsible/centsible/pkg/user"
)

// TestUser is the fixture user that repository tests operate on.
var TestUser = user.User{
	Id:          123,
	Uid:         "6f3f9257-0001-4e12-9f1c-000000000123",
	Username:    "test_user",
	DisplayName: "Test User",
}

// ContextWithTestUser returns a context carrying the fixture user,
// mirroring what the user middleware does for real requests.
func ContextWithTestUser(ctx context.Context) context.Context {
	return user.WithUser(ctx, TestUser)
}

// InsertTestUser stores the fixture user so that rows referencing
// user_id satisfy the foreign key constraints.
func InsertTestUser(t *testing.T, db *sql.DB) {
	t.Helper()

	_, err := db.Exec(
		"INSERT INTO users (id, uid, username, display_name) VALUES ($1, $2, $3, $4)",
		TestUser.Id, TestUser.Uid, TestUser.Username, TestUser.DisplayName,
	)
	if err != nil {
		t.Fatalf("Failed to insert test user: %v", err)
	}
}
