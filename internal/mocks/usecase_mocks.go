package mocks

import (
	"context"

	"libris/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase mocks usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RegisterOutput), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.Identity, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.Identity), args.Error(1)
}

// MockOTPUsecase mocks usecase.OTPUsecase.
type MockOTPUsecase struct {
	mock.Mock
}

func (m *MockOTPUsecase) IssueCode(ctx context.Context, input *usecase.IssueCodeInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *MockOTPUsecase) VerifyCode(ctx context.Context, input *usecase.VerifyCodeInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

// MockCatalogUsecase mocks usecase.CatalogUsecase.
type MockCatalogUsecase struct {
	mock.Mock
}

func (m *MockCatalogUsecase) ListBooks(ctx context.Context) ([]*usecase.BookOutput, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*usecase.BookOutput), args.Error(1)
}

func (m *MockCatalogUsecase) CreateBook(ctx context.Context, input *usecase.CreateBookInput) (*usecase.BookOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.BookOutput), args.Error(1)
}

func (m *MockCatalogUsecase) DeleteBook(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockLedgerUsecase mocks usecase.LedgerUsecase.
type MockLedgerUsecase struct {
	mock.Mock
}

func (m *MockLedgerUsecase) UpdateStatus(ctx context.Context, id int64, input *usecase.UpdateStatusInput) error {
	args := m.Called(ctx, id, input)

	return args.Error(0)
}

func (m *MockLedgerUsecase) ListBorrowed(ctx context.Context) ([]*usecase.BorrowedBookOutput, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*usecase.BorrowedBookOutput), args.Error(1)
}
