package handler

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	sessionv1 "github.com/advancia-platform/credential-lifecycle/api/generated/session/v1"
	"github.com/advancia-platform/credential-lifecycle/internal/server/interceptors"
	"github.com/advancia-platform/credential-lifecycle/internal/session/domain"
	"github.com/advancia-platform/credential-lifecycle/internal/session/service"
)

// Lifecycle is the session manager surface the handler drives.
type Lifecycle interface {
	CreateSession(ctx context.Context, req service.CreateRequest) (*service.Credentials, error)
	RotateRefreshCredential(ctx context.Context, credential string) (*service.Credentials, error)
	ValidateAccessCredential(ctx context.Context, credential string) (service.Principal, error)
	TouchActivity(ctx context.Context, sessionID string) error
	RevokeOwnSession(ctx context.Context, principalID, sessionID, reason string) error
	RevokeAllSessions(ctx context.Context, principalID, reason string) (int, error)
	ListActiveSessions(ctx context.Context, principalID string) ([]*domain.Session, error)
	Logout(ctx context.Context, credential, reason string) error
}

// Server implements SessionService (proto server) over the session manager.
// Proto: session/v1/session.proto → internal/session/handler.
type Server struct {
	sessionv1.UnimplementedSessionServiceServer
	sessions Lifecycle
	logger   *slog.Logger
}

// NewServer returns a SessionService server. If sessions is nil, all RPCs return Unimplemented.
func NewServer(sessions Lifecycle, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{sessions: sessions, logger: logger}
}

// CreateSession opens a session for a principal that the caller has already authenticated.
// The trusted-caller interceptor admits only upstream services to this method.
func (s *Server) CreateSession(ctx context.Context, req *sessionv1.CreateSessionRequest) (*sessionv1.CredentialsResponse, error) {
	if s.sessions == nil {
		return nil, status.Error(codes.Unimplemented, "method CreateSession not implemented")
	}
	if req.GetPrincipalId() == "" {
		return nil, status.Error(codes.InvalidArgument, "principal_id required")
	}
	ua := req.GetUserAgent()
	if ua == "" {
		ua = interceptors.UserAgent(ctx)
	}
	ip := req.GetIpAddress()
	if ip == "" {
		ip = interceptors.ClientIP(ctx)
	}
	creds, err := s.sessions.CreateSession(ctx, service.CreateRequest{
		PrincipalID: req.GetPrincipalId(),
		Class:       domain.PrincipalClass(req.GetClass()),
		Persistent:  req.GetPersistent(),
		Device: service.DeviceContext{
			UserAgent: ua,
			IPAddress: ip,
			Extra:     req.GetDeviceAttributes(),
		},
	})
	if err != nil {
		return nil, s.toStatus(ctx, "CreateSession", err)
	}
	return credentialsToResponse(creds), nil
}

// RotateRefresh exchanges a refresh credential for a new refresh and access credential pair.
func (s *Server) RotateRefresh(ctx context.Context, req *sessionv1.RotateRefreshRequest) (*sessionv1.CredentialsResponse, error) {
	if s.sessions == nil {
		return nil, status.Error(codes.Unimplemented, "method RotateRefresh not implemented")
	}
	if req.GetRefreshCredential() == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh_credential required")
	}
	creds, err := s.sessions.RotateRefreshCredential(ctx, req.GetRefreshCredential())
	if err != nil {
		return nil, s.toStatus(ctx, "RotateRefresh", err)
	}
	return credentialsToResponse(creds), nil
}

// ValidateAccess reports the identity behind an access credential. Used by services that do not
// verify credentials locally.
func (s *Server) ValidateAccess(ctx context.Context, req *sessionv1.ValidateAccessRequest) (*sessionv1.ValidateAccessResponse, error) {
	if s.sessions == nil {
		return nil, status.Error(codes.Unimplemented, "method ValidateAccess not implemented")
	}
	if req.GetAccessCredential() == "" {
		return nil, status.Error(codes.InvalidArgument, "access_credential required")
	}
	p, err := s.sessions.ValidateAccessCredential(ctx, req.GetAccessCredential())
	if err != nil {
		return nil, s.toStatus(ctx, "ValidateAccess", err)
	}
	return &sessionv1.ValidateAccessResponse{
		PrincipalId:       p.PrincipalID,
		SessionId:         p.SessionID,
		CredentialId:      p.CredentialID,
		CredentialVersion: p.CredentialVersion,
		Class:             string(p.Class),
		ExpiresAt:         timestamppb.New(p.ExpiresAt),
	}, nil
}

// TouchActivity records activity on the caller's session.
func (s *Server) TouchActivity(ctx context.Context, _ *sessionv1.TouchActivityRequest) (*sessionv1.TouchActivityResponse, error) {
	if s.sessions == nil {
		return nil, status.Error(codes.Unimplemented, "method TouchActivity not implemented")
	}
	sessionID, ok := interceptors.GetSessionID(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}
	if err := s.sessions.TouchActivity(ctx, sessionID); err != nil {
		return nil, s.toStatus(ctx, "TouchActivity", err)
	}
	return &sessionv1.TouchActivityResponse{}, nil
}

// RevokeSession revokes one of the caller's own sessions.
func (s *Server) RevokeSession(ctx context.Context, req *sessionv1.RevokeSessionRequest) (*sessionv1.RevokeSessionResponse, error) {
	if s.sessions == nil {
		return nil, status.Error(codes.Unimplemented, "method RevokeSession not implemented")
	}
	principalID, ok := interceptors.GetPrincipalID(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}
	if req.GetSessionId() == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id required")
	}
	err := s.sessions.RevokeOwnSession(ctx, principalID, req.GetSessionId(), req.GetReason())
	if errors.Is(err, service.ErrSessionNotFound) {
		return nil, status.Error(codes.NotFound, "session not found")
	}
	if err != nil {
		return nil, s.toStatus(ctx, "RevokeSession", err)
	}
	return &sessionv1.RevokeSessionResponse{}, nil
}

// RevokeAllSessions revokes every active session of the caller, including the current one.
func (s *Server) RevokeAllSessions(ctx context.Context, req *sessionv1.RevokeAllSessionsRequest) (*sessionv1.RevokeAllSessionsResponse, error) {
	if s.sessions == nil {
		return nil, status.Error(codes.Unimplemented, "method RevokeAllSessions not implemented")
	}
	principalID, ok := interceptors.GetPrincipalID(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}
	n, err := s.sessions.RevokeAllSessions(ctx, principalID, req.GetReason())
	if err != nil {
		return nil, s.toStatus(ctx, "RevokeAllSessions", err)
	}
	return &sessionv1.RevokeAllSessionsResponse{Revoked: int32(n)}, nil
}

// ListActiveSessions returns the caller's live sessions.
func (s *Server) ListActiveSessions(ctx context.Context, _ *sessionv1.ListActiveSessionsRequest) (*sessionv1.ListActiveSessionsResponse, error) {
	if s.sessions == nil {
		return nil, status.Error(codes.Unimplemented, "method ListActiveSessions not implemented")
	}
	principalID, ok := interceptors.GetPrincipalID(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}
	list, err := s.sessions.ListActiveSessions(ctx, principalID)
	if err != nil {
		return nil, s.toStatus(ctx, "ListActiveSessions", err)
	}
	current, _ := interceptors.GetSessionID(ctx)
	out := make([]*sessionv1.SessionInfo, len(list))
	for i, ses := range list {
		out[i] = sessionToInfo(ses)
		out[i].Current = ses.ID == current
	}
	return &sessionv1.ListActiveSessionsResponse{Sessions: out}, nil
}

// Logout ends the caller's session and kills the access credential it was made with.
func (s *Server) Logout(ctx context.Context, req *sessionv1.LogoutRequest) (*sessionv1.LogoutResponse, error) {
	if s.sessions == nil {
		return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
	}
	token, ok := interceptors.GetAccessCredential(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}
	if err := s.sessions.Logout(ctx, token, req.GetReason()); err != nil {
		return nil, s.toStatus(ctx, "Logout", err)
	}
	return &sessionv1.LogoutResponse{}, nil
}

func credentialsToResponse(c *service.Credentials) *sessionv1.CredentialsResponse {
	return &sessionv1.CredentialsResponse{
		SessionId:         c.SessionID,
		RefreshCredential: c.RefreshCredential,
		AccessCredential:  c.AccessCredential,
		CredentialId:      c.CredentialID,
		AccessExpiresAt:   timestamppb.New(c.AccessExpiresAt),
		CredentialVersion: c.CredentialVersion,
		ExpiresAt:         timestamppb.New(c.ExpiresAt),
	}
}

func sessionToInfo(s *domain.Session) *sessionv1.SessionInfo {
	return &sessionv1.SessionInfo{
		Id:                s.ID,
		Class:             string(s.PrincipalClass),
		DeviceFingerprint: s.DeviceFingerprint,
		IpAddress:         s.IPAddress,
		UserAgent:         s.UserAgent,
		CreatedAt:         timestamppb.New(s.CreatedAt),
		LastActivityAt:    timestamppb.New(s.LastActivityAt),
		ExpiresAt:         timestamppb.New(s.ExpiresAt),
	}
}
