package handler

import (
	sessionv1 "github.com/advancia-platform/credential-lifecycle/api/generated/session/v1"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "credential.session.v1.SessionService"

// PublicMethods returns the methods callable without any credential in metadata. Each of them
// carries the credential it acts on in the request itself.
func PublicMethods() map[string]bool {
	return map[string]bool{
		sessionv1.SessionService_RotateRefresh_FullMethodName:  true,
		sessionv1.SessionService_ValidateAccess_FullMethodName: true,
	}
}

// TrustedMethods returns the methods reserved for trusted upstream services. They are called on
// behalf of a principal that has no session yet, so they take a service credential instead of a
// Bearer access credential.
func TrustedMethods() map[string]bool {
	return map[string]bool{
		sessionv1.SessionService_CreateSession_FullMethodName: true,
	}
}
