package model

import "github.com/google/uuid"

// TokenManager issues and verifies session bearer tokens.
type TokenManager interface {
	GenerateSessionToken(sessionID, userID uuid.UUID) (string, error)
	ParseSessionToken(token string) (sessionID uuid.UUID, userID uuid.UUID, err error)
}

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}
