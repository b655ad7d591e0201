package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/hipolitesport/roster/internal/dependencies/mocks"
	"github.com/hipolitesport/roster/internal/metrics"
	"github.com/hipolitesport/roster/internal/model"
	"github.com/hipolitesport/roster/internal/storage/memory"
	rostertestutil "github.com/hipolitesport/roster/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	metrics *metrics.Service
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.metrics = metrics.NewService(prometheus.NewRegistry())

	cfg := DefaultConfig()
	cfg.Secret = []byte("test-secret")

	var err error
	s.service, err = New(s.storage, s.clock, mocks.NewSequentialIDs(), s.metrics, cfg, rostertestutil.NopLogger())
	s.Require().NoError(err)
	s.ctx = context.Background()
}

// EnsureAccount tests

func (s *ServiceSuite) TestEnsureAccountCreatesHashedAccount() {
	account, err := s.service.EnsureAccount(s.ctx, "admin@club.test", "secreto", model.RoleAdmin)
	s.Require().NoError(err)

	s.Equal("1", account.ID)
	stored, err := s.storage.GetAccountByEmail(s.ctx, "admin@club.test")
	s.Require().NoError(err)
	s.Equal(model.RoleAdmin, stored.Rol)
	s.NotEmpty(stored.PasswordHash)
	s.NotEqual("secreto", stored.PasswordHash)
}

func (s *ServiceSuite) TestEnsureAccountResetsExisting() {
	first, _ := s.service.EnsureAccount(s.ctx, "admin@club.test", "viejo", "socio")
	second, err := s.service.EnsureAccount(s.ctx, "admin@club.test", "nuevo", model.RoleAdmin)
	s.Require().NoError(err)

	s.Equal(first.ID, second.ID)
	_, err = s.service.Login(s.ctx, "admin@club.test", "viejo")
	s.ErrorIs(err, model.ErrInvalidLogin)
	_, err = s.service.Login(s.ctx, "admin@club.test", "nuevo")
	s.NoError(err)
}

func (s *ServiceSuite) TestEnsureAccountRequiresCredentials() {
	_, err := s.service.EnsureAccount(s.ctx, " ", "secreto", model.RoleAdmin)
	s.Error(err)
}

// Login tests

func (s *ServiceSuite) TestLoginIssuesVerifiableToken() {
	_, _ = s.service.EnsureAccount(s.ctx, "admin@club.test", "secreto", model.RoleAdmin)

	token, err := s.service.Login(s.ctx, "admin@club.test", "secreto")
	s.Require().NoError(err)

	identity, err := s.service.Verify(token)
	s.Require().NoError(err)
	s.Equal(model.Identity{ID: "1", Rol: model.RoleAdmin}, identity)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Logins.WithLabelValues("success")))
}

func (s *ServiceSuite) TestLoginWrongPassword() {
	_, _ = s.service.EnsureAccount(s.ctx, "admin@club.test", "secreto", model.RoleAdmin)

	_, err := s.service.Login(s.ctx, "admin@club.test", "otro")
	s.ErrorIs(err, model.ErrInvalidLogin)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Logins.WithLabelValues("failure")))
}

func (s *ServiceSuite) TestLoginUnknownEmail() {
	_, err := s.service.Login(s.ctx, "nadie@club.test", "secreto")
	s.ErrorIs(err, model.ErrInvalidLogin)
}

func (s *ServiceSuite) TestTokenCarriesClaimNames() {
	token, err := s.service.Issue(model.Identity{ID: "7", Rol: "socio"})
	s.Require().NoError(err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	s.Require().NoError(err)
	s.Equal("7", claims["id"])
	s.Equal("socio", claims["rol"])
	s.Equal(float64(s.clock.Now().Add(24*time.Hour).Unix()), claims["exp"])
}

// Verify tests

func (s *ServiceSuite) TestVerifyRejectsExpired() {
	token, _ := s.service.Issue(model.Identity{ID: "1", Rol: model.RoleAdmin})

	s.clock.Advance(25 * time.Hour)

	_, err := s.service.Verify(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestVerifyRejectsForeignSignature() {
	forged := rostertestutil.Credential("1", model.RoleAdmin, s.clock.Now().Add(time.Hour))

	_, err := s.service.Verify(forged)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestVerifyRejectsGarbage() {
	_, err := s.service.Verify("not-a-token")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestVerifyRequiresExpiry() {
	unbounded, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{ID: "1", Rol: model.RoleAdmin}).
		SignedString([]byte("test-secret"))
	s.Require().NoError(err)

	_, err = s.service.Verify(unbounded)
	s.ErrorIs(err, ErrInvalidToken)
}

func TestRandomSecretWhenUnset(t *testing.T) {
	svc, err := New(memory.New(), mocks.NewMockClock(time.Now()), mocks.NewSequentialIDs(), nil, DefaultConfig(), nil)
	require.NoError(t, err)
	assert.Len(t, svc.secret, 32)
}
