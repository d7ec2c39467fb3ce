package dto

import (
	"encoding/base64"
	"net/http"
	"slices"

	"github.com/google/uuid"
)

// MaxProfileImageSize caps decoded profile image uploads.
const MaxProfileImageSize = 10 << 20

var profileImageTypes = []string{"image/jpeg", "image/png", "image/webp"}

// ProfileImageUploadRequest is a decoded profile image upload.
type ProfileImageUploadRequest struct {
	Data        []byte
	ContentType string
}

// ProfileImageResponse reports where a user's new profile image is stored.
type ProfileImageResponse struct {
	UserID           string `json:"userId"`
	ProfileImagePath string `json:"profileImagePath"`
}

// ProfileImageDataResponse carries the image bytes back to the caller.
type ProfileImageDataResponse struct {
	ContentType string `json:"contentType"`
	File        string `json:"file"`
}

// ValidateProfileImageUpload decodes {"file": "<base64>"} and checks the image type.
func ValidateProfileImageUpload(input map[string]any) (ProfileImageUploadRequest, error) {
	f := newFields(input)
	encoded := f.requiredString("file", nil)
	if err := f.errs.errOrNil(); err != nil {
		return ProfileImageUploadRequest{}, err
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	switch {
	case err != nil:
		f.errs.Add("file", "file must be base64 encoded")
	case len(data) == 0:
		f.errs.Add("file", "file should not be empty")
	case len(data) > MaxProfileImageSize:
		f.errs.Add("file", "file must not be larger than %d bytes", MaxProfileImageSize)
	}
	if err := f.errs.errOrNil(); err != nil {
		return ProfileImageUploadRequest{}, err
	}

	contentType := http.DetectContentType(data)
	if !slices.Contains(profileImageTypes, contentType) {
		f.errs.Add("file", "file must be one of the following types: jpeg, png, webp")
		return ProfileImageUploadRequest{}, f.errs
	}

	return ProfileImageUploadRequest{Data: data, ContentType: contentType}, nil
}

// MapProfileImage builds the upload response.
func MapProfileImage(userID uuid.UUID, path string) ProfileImageResponse {
	return ProfileImageResponse{UserID: userID.String(), ProfileImagePath: path}
}

// MapProfileImageData encodes image bytes for transport.
func MapProfileImageData(contentType string, data []byte) ProfileImageDataResponse {
	return ProfileImageDataResponse{
		ContentType: contentType,
		File:        base64.StdEncoding.EncodeToString(data),
	}
}
