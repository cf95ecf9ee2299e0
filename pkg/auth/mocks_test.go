package auth

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockUserFinder is a mock implementation of UserFinder.
type MockUserFinder struct {
	mock.Mock
}

func (m *MockUserFinder) FindUserByUsername(ctx context.Context, username, password string) (UserRecord, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(UserRecord), args.Error(1)
}

// MockSession is a mock implementation of SessionEstablisher.
type MockSession struct {
	mock.Mock
}

func (m *MockSession) Establish(ctx context.Context, userID int64, userName string) error {
	args := m.Called(ctx, userID, userName)
	return args.Error(0)
}
