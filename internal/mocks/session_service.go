package mocks

import (
	"context"

	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"

	"github.com/dtroode/mediavault-server/internal/dto"
)

// SessionService is a mock type for the SessionService type
type SessionService struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, userID, currentID
func (_m *SessionService) List(ctx context.Context, userID uuid.UUID, currentID uuid.UUID) ([]dto.SessionResponse, error) {
	ret := _m.Called(ctx, userID, currentID)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []dto.SessionResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) ([]dto.SessionResponse, error)); ok {
		return rf(ctx, userID, currentID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) []dto.SessionResponse); ok {
		r0 = rf(ctx, userID, currentID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]dto.SessionResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, userID, currentID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, userID, sessionID
func (_m *SessionService) Delete(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) error {
	ret := _m.Called(ctx, userID, sessionID)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r0 = rf(ctx, userID, sessionID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// DeleteAll provides a mock function with given fields: ctx, userID, currentID
func (_m *SessionService) DeleteAll(ctx context.Context, userID uuid.UUID, currentID uuid.UUID) error {
	ret := _m.Called(ctx, userID, currentID)

	if len(ret) == 0 {
		panic("no return value specified for DeleteAll")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r0 = rf(ctx, userID, currentID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetSyncAcks provides a mock function with given fields: ctx, sessionID
func (_m *SessionService) GetSyncAcks(ctx context.Context, sessionID uuid.UUID) ([]dto.SyncAck, error) {
	ret := _m.Called(ctx, sessionID)

	if len(ret) == 0 {
		panic("no return value specified for GetSyncAcks")
	}

	var r0 []dto.SyncAck
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]dto.SyncAck, error)); ok {
		return rf(ctx, sessionID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []dto.SyncAck); ok {
		r0 = rf(ctx, sessionID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]dto.SyncAck)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, sessionID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SetSyncAcks provides a mock function with given fields: ctx, sessionID, req
func (_m *SessionService) SetSyncAcks(ctx context.Context, sessionID uuid.UUID, req dto.SyncAckSetRequest) error {
	ret := _m.Called(ctx, sessionID, req)

	if len(ret) == 0 {
		panic("no return value specified for SetSyncAcks")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, dto.SyncAckSetRequest) error); ok {
		r0 = rf(ctx, sessionID, req)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// DeleteSyncAcks provides a mock function with given fields: ctx, sessionID, req
func (_m *SessionService) DeleteSyncAcks(ctx context.Context, sessionID uuid.UUID, req dto.SyncAckDeleteRequest) error {
	ret := _m.Called(ctx, sessionID, req)

	if len(ret) == 0 {
		panic("no return value specified for DeleteSyncAcks")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, dto.SyncAckDeleteRequest) error); ok {
		r0 = rf(ctx, sessionID, req)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewSessionService creates a new instance of SessionService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewSessionService(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionService {
	m := &SessionService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
