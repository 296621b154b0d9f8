package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock whose expectations are asserted when the test ends.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Issue(subject uuid.UUID) (string, time.Time, error) {
	args := m.Called(subject)
	expiresAt, _ := args.Get(1).(time.Time)

	return args.String(0), expiresAt, args.Error(2)
}

func (m *MockTokenService) Verify(token string) (uuid.UUID, time.Time, error) {
	args := m.Called(token)
	subject, _ := args.Get(0).(uuid.UUID)
	expiresAt, _ := args.Get(1).(time.Time)

	return subject, expiresAt, args.Error(2)
}

func (m *MockTokenService) ExpiresAt(token string) (time.Time, bool) {
	args := m.Called(token)
	expiresAt, _ := args.Get(0).(time.Time)

	return expiresAt, args.Bool(1)
}

func (m *MockTokenService) TTL() time.Duration {
	args := m.Called()
	ttl, _ := args.Get(0).(time.Duration)

	return ttl
}
