package server

import (
	"context"

	"github.com/advancia-platform/credential-lifecycle/internal/session/service"
)

// rejectAll fails every access credential; used when no session manager is configured.
type rejectAll struct{}

func (rejectAll) ValidateAccessCredential(context.Context, string) (service.Principal, error) {
	return service.Principal{}, service.ErrUnauthorized
}
