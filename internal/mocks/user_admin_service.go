package mocks

import (
	"context"

	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"

	"github.com/dtroode/mediavault-server/internal/dto"
)

// UserAdminService is a mock type for the UserAdminService type
type UserAdminService struct {
	mock.Mock
}

// Search provides a mock function with given fields: ctx, filter
func (_m *UserAdminService) Search(ctx context.Context, filter dto.UserSearchFilter) ([]dto.UserAdminResponse, error) {
	ret := _m.Called(ctx, filter)

	if len(ret) == 0 {
		panic("no return value specified for Search")
	}

	var r0 []dto.UserAdminResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, dto.UserSearchFilter) ([]dto.UserAdminResponse, error)); ok {
		return rf(ctx, filter)
	}
	if rf, ok := ret.Get(0).(func(context.Context, dto.UserSearchFilter) []dto.UserAdminResponse); ok {
		r0 = rf(ctx, filter)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]dto.UserAdminResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, dto.UserSearchFilter) error); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Get provides a mock function with given fields: ctx, id
func (_m *UserAdminService) Get(ctx context.Context, id uuid.UUID) (dto.UserAdminResponse, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 dto.UserAdminResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (dto.UserAdminResponse, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) dto.UserAdminResponse); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(dto.UserAdminResponse)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Create provides a mock function with given fields: ctx, req
func (_m *UserAdminService) Create(ctx context.Context, req dto.UserAdminCreateRequest) (dto.UserAdminResponse, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 dto.UserAdminResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, dto.UserAdminCreateRequest) (dto.UserAdminResponse, error)); ok {
		return rf(ctx, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, dto.UserAdminCreateRequest) dto.UserAdminResponse); ok {
		r0 = rf(ctx, req)
	} else {
		r0 = ret.Get(0).(dto.UserAdminResponse)
	}

	if rf, ok := ret.Get(1).(func(context.Context, dto.UserAdminCreateRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, id, req
func (_m *UserAdminService) Update(ctx context.Context, id uuid.UUID, req dto.UserAdminUpdateRequest) (dto.UserAdminResponse, error) {
	ret := _m.Called(ctx, id, req)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 dto.UserAdminResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, dto.UserAdminUpdateRequest) (dto.UserAdminResponse, error)); ok {
		return rf(ctx, id, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, dto.UserAdminUpdateRequest) dto.UserAdminResponse); ok {
		r0 = rf(ctx, id, req)
	} else {
		r0 = ret.Get(0).(dto.UserAdminResponse)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, dto.UserAdminUpdateRequest) error); ok {
		r1 = rf(ctx, id, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, actorID, id, req
func (_m *UserAdminService) Delete(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req dto.UserAdminDeleteRequest) (dto.UserAdminResponse, error) {
	ret := _m.Called(ctx, actorID, id, req)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 dto.UserAdminResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, dto.UserAdminDeleteRequest) (dto.UserAdminResponse, error)); ok {
		return rf(ctx, actorID, id, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, dto.UserAdminDeleteRequest) dto.UserAdminResponse); ok {
		r0 = rf(ctx, actorID, id, req)
	} else {
		r0 = ret.Get(0).(dto.UserAdminResponse)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID, dto.UserAdminDeleteRequest) error); ok {
		r1 = rf(ctx, actorID, id, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Restore provides a mock function with given fields: ctx, id
func (_m *UserAdminService) Restore(ctx context.Context, id uuid.UUID) (dto.UserAdminResponse, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Restore")
	}

	var r0 dto.UserAdminResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (dto.UserAdminResponse, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) dto.UserAdminResponse); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(dto.UserAdminResponse)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewUserAdminService creates a new instance of UserAdminService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewUserAdminService(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserAdminService {
	m := &UserAdminService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
