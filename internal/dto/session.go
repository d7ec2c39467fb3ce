package dto

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/mediavault-server/internal/model"
)

// SessionResponse describes a login session. It never carries the token.
type SessionResponse struct {
	ID         string `json:"id"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
	Current    bool   `json:"current"`
	DeviceType string `json:"deviceType"`
	DeviceOS   string `json:"deviceOS"`
}

// SyncAck is one acknowledged sync position.
type SyncAck struct {
	Type string `json:"type" validate:"min=1,max=64"`
	Ack  string `json:"ack" validate:"min=1"`
}

// SyncAckSetRequest stores acknowledgements for the current session.
type SyncAckSetRequest struct {
	Acks []SyncAck `json:"acks" validate:"min=1,max=1000,dive"`
}

// SyncAckDeleteRequest removes acknowledgements; no types means all of them.
type SyncAckDeleteRequest struct {
	Types []string `json:"types" validate:"omitempty,dive,min=1,max=64"`
}

// MapSession projects a session. current is the caller's own session id.
func MapSession(session model.Session, current uuid.UUID) SessionResponse {
	return SessionResponse{
		ID:         session.ID.String(),
		CreatedAt:  formatTime(session.CreatedAt),
		UpdatedAt:  formatTime(session.UpdatedAt),
		Current:    session.ID == current,
		DeviceType: session.DeviceType,
		DeviceOS:   session.DeviceOS,
	}
}

// MapSyncAck projects a stored checkpoint.
func MapSyncAck(checkpoint model.SyncCheckpoint) SyncAck {
	return SyncAck{Type: checkpoint.Type, Ack: checkpoint.Ack}
}

// ValidateSyncAckSet validates {"acks": [{"type": ..., "ack": ...}]}.
func ValidateSyncAckSet(input map[string]any) (SyncAckSetRequest, error) {
	f := newFields(input)
	var req SyncAckSetRequest

	list, ok := f.optionalList("acks")
	if !ok && !f.errs.Has("acks") {
		f.errs.Add("acks", "acks is required")
	}
	for i, item := range list {
		obj, isObj := item.(map[string]any)
		if !isObj {
			f.errs.Add(fmt.Sprintf("acks[%d]", i), "acks[%d] must be an object", i)
			continue
		}
		nested := newFields(obj)
		ack := SyncAck{
			Type: nested.requiredString("type", nil),
			Ack:  nested.requiredString("ack", nil),
		}
		for _, fe := range nested.errs.Errors {
			f.errs.Add(fmt.Sprintf("acks[%d].%s", i, fe.Field), "acks[%d].%s", i, fe.Message)
		}
		req.Acks = append(req.Acks, ack)
	}

	if err := checkStruct(req, f.errs); err != nil {
		return SyncAckSetRequest{}, err
	}
	return req, nil
}

// ValidateSyncAckDelete validates {"types": [...]}.
func ValidateSyncAckDelete(input map[string]any) (SyncAckDeleteRequest, error) {
	f := newFields(input)
	var req SyncAckDeleteRequest

	list, _ := f.optionalList("types")
	for i, item := range list {
		s, ok := item.(string)
		if !ok {
			f.errs.Add(fmt.Sprintf("types[%d]", i), "types[%d] must be a string", i)
			continue
		}
		req.Types = append(req.Types, s)
	}

	if err := checkStruct(req, f.errs); err != nil {
		return SyncAckDeleteRequest{}, err
	}
	return req, nil
}
