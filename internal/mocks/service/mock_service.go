// Package service provides mock implementations of the domain service
// interfaces for testing.
package service

import (
	"context"
	"testing"

	"reachqr/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockTokenCodec is a mock implementation of service.TokenCodec.
type MockTokenCodec struct {
	mock.Mock
}

// NewMockTokenCodec creates a new mock instance and registers expectation checks.
func NewMockTokenCodec(t *testing.T) *MockTokenCodec {
	m := &MockTokenCodec{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenCodec) GenerateToken() (string, error) {
	args := m.Called()

	return args.String(0), args.Error(1)
}

func (m *MockTokenCodec) HashToken(token string) string {
	args := m.Called(token)

	return args.String(0)
}

// MockMailer is a mock implementation of service.Mailer.
type MockMailer struct {
	mock.Mock
}

// NewMockMailer creates a new mock instance and registers expectation checks.
func NewMockMailer(t *testing.T) *MockMailer {
	m := &MockMailer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMailer) SendEditLink(ctx context.Context, email *service.EditLinkEmail) error {
	args := m.Called(ctx, email)

	return args.Error(0)
}

func (m *MockMailer) SendRecovery(ctx context.Context, to string, pages []service.RecoveredPage) error {
	args := m.Called(ctx, to, pages)

	return args.Error(0)
}

func (m *MockMailer) SendNotification(ctx context.Context, email *service.NotificationEmail) error {
	args := m.Called(ctx, email)

	return args.Error(0)
}

// MockLogoStorage is a mock implementation of service.LogoStorage.
type MockLogoStorage struct {
	mock.Mock
}

// NewMockLogoStorage creates a new mock instance and registers expectation checks.
func NewMockLogoStorage(t *testing.T) *MockLogoStorage {
	m := &MockLogoStorage{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLogoStorage) Upload(ctx context.Context, upload *service.LogoUpload) (string, error) {
	args := m.Called(ctx, upload)

	return args.String(0), args.Error(1)
}

// MockQRCodeService is a mock implementation of service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

// NewMockQRCodeService creates a new mock instance and registers expectation checks.
func NewMockQRCodeService(t *testing.T) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockQRCodeService) GenerateProfileQR(slug string) ([]byte, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}
