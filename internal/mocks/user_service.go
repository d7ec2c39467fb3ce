package mocks

import (
	"context"

	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"

	"github.com/dtroode/mediavault-server/internal/dto"
)

// UserService is a mock type for the UserService type
type UserService struct {
	mock.Mock
}

// GetMe provides a mock function with given fields: ctx, userID
func (_m *UserService) GetMe(ctx context.Context, userID uuid.UUID) (dto.UserAdminResponse, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetMe")
	}

	var r0 dto.UserAdminResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (dto.UserAdminResponse, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) dto.UserAdminResponse); ok {
		r0 = rf(ctx, userID)
	} else {
		r0 = ret.Get(0).(dto.UserAdminResponse)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateMe provides a mock function with given fields: ctx, userID, req
func (_m *UserService) UpdateMe(ctx context.Context, userID uuid.UUID, req dto.UserUpdateRequest) (dto.UserAdminResponse, error) {
	ret := _m.Called(ctx, userID, req)

	if len(ret) == 0 {
		panic("no return value specified for UpdateMe")
	}

	var r0 dto.UserAdminResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, dto.UserUpdateRequest) (dto.UserAdminResponse, error)); ok {
		return rf(ctx, userID, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, dto.UserUpdateRequest) dto.UserAdminResponse); ok {
		r0 = rf(ctx, userID, req)
	} else {
		r0 = ret.Get(0).(dto.UserAdminResponse)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, dto.UserUpdateRequest) error); ok {
		r1 = rf(ctx, userID, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetMyPreferences provides a mock function with given fields: ctx, userID
func (_m *UserService) GetMyPreferences(ctx context.Context, userID uuid.UUID) (dto.UserPreferencesResponse, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetMyPreferences")
	}

	var r0 dto.UserPreferencesResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (dto.UserPreferencesResponse, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) dto.UserPreferencesResponse); ok {
		r0 = rf(ctx, userID)
	} else {
		r0 = ret.Get(0).(dto.UserPreferencesResponse)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateMyPreferences provides a mock function with given fields: ctx, userID, req
func (_m *UserService) UpdateMyPreferences(ctx context.Context, userID uuid.UUID, req dto.UserPreferencesUpdateRequest) (dto.UserPreferencesResponse, error) {
	ret := _m.Called(ctx, userID, req)

	if len(ret) == 0 {
		panic("no return value specified for UpdateMyPreferences")
	}

	var r0 dto.UserPreferencesResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, dto.UserPreferencesUpdateRequest) (dto.UserPreferencesResponse, error)); ok {
		return rf(ctx, userID, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, dto.UserPreferencesUpdateRequest) dto.UserPreferencesResponse); ok {
		r0 = rf(ctx, userID, req)
	} else {
		r0 = ret.Get(0).(dto.UserPreferencesResponse)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, dto.UserPreferencesUpdateRequest) error); ok {
		r1 = rf(ctx, userID, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateProfileImage provides a mock function with given fields: ctx, userID, req
func (_m *UserService) CreateProfileImage(ctx context.Context, userID uuid.UUID, req dto.ProfileImageUploadRequest) (dto.ProfileImageResponse, error) {
	ret := _m.Called(ctx, userID, req)

	if len(ret) == 0 {
		panic("no return value specified for CreateProfileImage")
	}

	var r0 dto.ProfileImageResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, dto.ProfileImageUploadRequest) (dto.ProfileImageResponse, error)); ok {
		return rf(ctx, userID, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, dto.ProfileImageUploadRequest) dto.ProfileImageResponse); ok {
		r0 = rf(ctx, userID, req)
	} else {
		r0 = ret.Get(0).(dto.ProfileImageResponse)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, dto.ProfileImageUploadRequest) error); ok {
		r1 = rf(ctx, userID, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetProfileImage provides a mock function with given fields: ctx, userID
func (_m *UserService) GetProfileImage(ctx context.Context, userID uuid.UUID) (dto.ProfileImageDataResponse, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetProfileImage")
	}

	var r0 dto.ProfileImageDataResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (dto.ProfileImageDataResponse, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) dto.ProfileImageDataResponse); ok {
		r0 = rf(ctx, userID)
	} else {
		r0 = ret.Get(0).(dto.ProfileImageDataResponse)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteProfileImage provides a mock function with given fields: ctx, userID
func (_m *UserService) DeleteProfileImage(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for DeleteProfileImage")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = rf(ctx, userID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewUserService creates a new instance of UserService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewUserService(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserService {
	m := &UserService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
