package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dtroode/mediavault-server/internal/dto"
	"github.com/dtroode/mediavault-server/internal/logger"
	"github.com/dtroode/mediavault-server/internal/model"
)

const SessionsServiceName = "mediavault.v1.Sessions"

// SessionService defines session and sync checkpoint operations.
type SessionService interface {
	List(ctx context.Context, userID, currentID uuid.UUID) ([]dto.SessionResponse, error)
	Delete(ctx context.Context, userID, sessionID uuid.UUID) error
	DeleteAll(ctx context.Context, userID, currentID uuid.UUID) error
	GetSyncAcks(ctx context.Context, sessionID uuid.UUID) ([]dto.SyncAck, error)
	SetSyncAcks(ctx context.Context, sessionID uuid.UUID, req dto.SyncAckSetRequest) error
	DeleteSyncAcks(ctx context.Context, sessionID uuid.UUID, req dto.SyncAckDeleteRequest) error
}

// SessionsServer is the server API for the Sessions service.
type SessionsServer interface {
	ListSessions(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	DeleteSession(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	DeleteAllSessions(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	GetSyncAck(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	SetSyncAck(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	DeleteSyncAck(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}

var SessionsServiceDesc = grpc.ServiceDesc{
	ServiceName: SessionsServiceName,
	HandlerType: (*SessionsServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod[SessionsServer](SessionsServiceName, "ListSessions", SessionsServer.ListSessions),
		unaryMethod[SessionsServer](SessionsServiceName, "DeleteSession", SessionsServer.DeleteSession),
		unaryMethod[SessionsServer](SessionsServiceName, "DeleteAllSessions", SessionsServer.DeleteAllSessions),
		unaryMethod[SessionsServer](SessionsServiceName, "GetSyncAck", SessionsServer.GetSyncAck),
		unaryMethod[SessionsServer](SessionsServiceName, "SetSyncAck", SessionsServer.SetSyncAck),
		unaryMethod[SessionsServer](SessionsServiceName, "DeleteSyncAck", SessionsServer.DeleteSyncAck),
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterSessionsServer(s grpc.ServiceRegistrar, srv SessionsServer) {
	s.RegisterService(&SessionsServiceDesc, srv)
}

var _ SessionsServer = (*Session)(nil)

// Session handles the caller's sessions and sync checkpoints.
type Session struct {
	sessionService SessionService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewSession(sessionService SessionService, contextManager model.ContextManager, logger *logger.Logger) *Session {
	return &Session{
		sessionService: sessionService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type sessionListResponse struct {
	Sessions []dto.SessionResponse `json:"sessions"`
}

type syncAckListResponse struct {
	Acks []dto.SyncAck `json:"acks"`
}

func (h *Session) ListSessions(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	userID, sessionID, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(err)
	}

	sessions, err := h.sessionService.List(ctx, userID, sessionID)
	if err != nil {
		return nil, handleError(err)
	}
	return reply(sessionListResponse{Sessions: sessions})
}

func (h *Session) DeleteSession(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	userID, _, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(err)
	}

	id, err := parseID(asMap(in), "id")
	if err != nil {
		return nil, handleError(err)
	}

	if err := h.sessionService.Delete(ctx, userID, id); err != nil {
		h.logger.Info("Session handler: delete failed",
			"user_id", userID,
			"session_id", id,
			"error", err.Error())
		return nil, handleError(err)
	}
	return emptyReply(), nil
}

func (h *Session) DeleteAllSessions(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	userID, sessionID, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(err)
	}

	if err := h.sessionService.DeleteAll(ctx, userID, sessionID); err != nil {
		return nil, handleError(err)
	}
	return emptyReply(), nil
}

func (h *Session) GetSyncAck(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	_, sessionID, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(err)
	}

	acks, err := h.sessionService.GetSyncAcks(ctx, sessionID)
	if err != nil {
		return nil, handleError(err)
	}
	return reply(syncAckListResponse{Acks: acks})
}

func (h *Session) SetSyncAck(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	_, sessionID, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(err)
	}

	req, err := dto.ValidateSyncAckSet(asMap(in))
	if err != nil {
		return nil, handleError(err)
	}

	if err := h.sessionService.SetSyncAcks(ctx, sessionID, req); err != nil {
		h.logger.Error("Session handler: storing sync acks failed",
			"session_id", sessionID,
			"error", err.Error())
		return nil, handleError(err)
	}
	return emptyReply(), nil
}

func (h *Session) DeleteSyncAck(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	_, sessionID, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(err)
	}

	req, err := dto.ValidateSyncAckDelete(asMap(in))
	if err != nil {
		return nil, handleError(err)
	}

	if err := h.sessionService.DeleteSyncAcks(ctx, sessionID, req); err != nil {
		return nil, handleError(err)
	}
	return emptyReply(), nil
}
