package factory

import (
	"context"
	"time"

	"github.com/hipolitesport/roster/internal/dependencies/mocks"
	"github.com/hipolitesport/roster/internal/model"
	"github.com/hipolitesport/roster/internal/services/auth"
	"github.com/hipolitesport/roster/internal/storage/memory"
)

// Seeded test accounts
const (
	TestAdminEmail    = "admin@club.test"
	TestAdminPassword = "admin-pass"
	TestStaffEmail    = "staff@club.test"
	TestStaffPassword = "staff-pass"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	MockIDs   *mocks.SequentialIDs
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The mock clock starts at the real current time so tokens it issues are
// accepted by clients running on the system clock.
func NewTestApp() (*TestApp, error) {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Now().UTC().Truncate(time.Second))
	mockIDs := mocks.NewSequentialIDs()

	authCfg := auth.DefaultConfig()
	authCfg.Secret = []byte("test-server-secret")

	app, err := newWithDependencies(store, mockClock, mockIDs, Config{AuthConfig: authCfg})
	if err != nil {
		return nil, err
	}

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		MockIDs:   mockIDs,
	}, nil
}

// SeedAccounts creates an admin and a non-admin account
func (t *TestApp) SeedAccounts(ctx context.Context) error {
	if _, err := t.AuthService.EnsureAccount(ctx, TestAdminEmail, TestAdminPassword, model.RoleAdmin); err != nil {
		return err
	}
	_, err := t.AuthService.EnsureAccount(ctx, TestStaffEmail, TestStaffPassword, "staff")
	return err
}
