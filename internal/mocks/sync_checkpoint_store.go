package mocks

import (
	"context"

	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"

	"github.com/dtroode/mediavault-server/internal/model"
)

// SyncCheckpointStore is a mock type for the SyncCheckpointStore type
type SyncCheckpointStore struct {
	mock.Mock
}

// Upsert provides a mock function with given fields: ctx, checkpoints
func (_m *SyncCheckpointStore) Upsert(ctx context.Context, checkpoints []model.SyncCheckpoint) error {
	ret := _m.Called(ctx, checkpoints)

	if len(ret) == 0 {
		panic("no return value specified for Upsert")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []model.SyncCheckpoint) error); ok {
		r0 = rf(ctx, checkpoints)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetBySessionID provides a mock function with given fields: ctx, sessionID
func (_m *SyncCheckpointStore) GetBySessionID(ctx context.Context, sessionID uuid.UUID) ([]model.SyncCheckpoint, error) {
	ret := _m.Called(ctx, sessionID)

	if len(ret) == 0 {
		panic("no return value specified for GetBySessionID")
	}

	var r0 []model.SyncCheckpoint
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]model.SyncCheckpoint, error)); ok {
		return rf(ctx, sessionID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []model.SyncCheckpoint); ok {
		r0 = rf(ctx, sessionID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]model.SyncCheckpoint)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, sessionID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, sessionID, types
func (_m *SyncCheckpointStore) Delete(ctx context.Context, sessionID uuid.UUID, types []string) error {
	ret := _m.Called(ctx, sessionID, types)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, []string) error); ok {
		r0 = rf(ctx, sessionID, types)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewSyncCheckpointStore creates a new instance of SyncCheckpointStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewSyncCheckpointStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *SyncCheckpointStore {
	m := &SyncCheckpointStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
