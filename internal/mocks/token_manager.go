package mocks

import (
	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// TokenManager is a mock type for the TokenManager type
type TokenManager struct {
	mock.Mock
}

// GenerateSessionToken provides a mock function with given fields: sessionID, userID
func (_m *TokenManager) GenerateSessionToken(sessionID uuid.UUID, userID uuid.UUID) (string, error) {
	ret := _m.Called(sessionID, userID)

	if len(ret) == 0 {
		panic("no return value specified for GenerateSessionToken")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(uuid.UUID, uuid.UUID) (string, error)); ok {
		return rf(sessionID, userID)
	}
	if rf, ok := ret.Get(0).(func(uuid.UUID, uuid.UUID) string); ok {
		r0 = rf(sessionID, userID)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(sessionID, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ParseSessionToken provides a mock function with given fields: token
func (_m *TokenManager) ParseSessionToken(token string) (uuid.UUID, uuid.UUID, error) {
	ret := _m.Called(token)

	if len(ret) == 0 {
		panic("no return value specified for ParseSessionToken")
	}

	var r0 uuid.UUID
	var r1 uuid.UUID
	var r2 error
	if rf, ok := ret.Get(0).(func(string) (uuid.UUID, uuid.UUID, error)); ok {
		return rf(token)
	}
	if rf, ok := ret.Get(0).(func(string) uuid.UUID); ok {
		r0 = rf(token)
	} else {
		r0 = ret.Get(0).(uuid.UUID)
	}

	if rf, ok := ret.Get(1).(func(string) uuid.UUID); ok {
		r1 = rf(token)
	} else {
		r1 = ret.Get(1).(uuid.UUID)
	}

	if rf, ok := ret.Get(2).(func(string) error); ok {
		r2 = rf(token)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// NewTokenManager creates a new instance of TokenManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewTokenManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *TokenManager {
	m := &TokenManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
