package engine

import (
	"context"
	"errors"

	policydomain "github.com/advancia-platform/credential-lifecycle/internal/policy/domain"
	sessiondomain "github.com/advancia-platform/credential-lifecycle/internal/session/domain"
)

// ErrInvalidDecision is returned when a policy produces an unusable result.
var ErrInvalidDecision = errors.New("policy: invalid decision")

// Request describes the session about to be created.
type Request struct {
	PrincipalID string
	Class       sessiondomain.PrincipalClass
	Persistent  bool
}

// Evaluator resolves the session policy for a request.
type Evaluator interface {
	Resolve(ctx context.Context, req Request) (policydomain.SessionPolicy, error)
}

// StaticEvaluator maps principal classes to limits directly, without a policy engine.
type StaticEvaluator struct {
	Limits policydomain.Limits
}

// NewStaticEvaluator returns a StaticEvaluator over limits.
func NewStaticEvaluator(limits policydomain.Limits) *StaticEvaluator {
	return &StaticEvaluator{Limits: limits}
}

// Resolve never fails.
func (e *StaticEvaluator) Resolve(_ context.Context, req Request) (policydomain.SessionPolicy, error) {
	p := policydomain.SessionPolicy{
		MaxConcurrentSessions: e.Limits.MaxConcurrentStandard,
		RefreshTTL:            e.Limits.RefreshTTLDefault,
		ExtendOnActivity:      true,
	}
	if req.Class == sessiondomain.ClassElevated {
		p.MaxConcurrentSessions = e.Limits.MaxConcurrentElevated
	}
	if req.Persistent {
		p.RefreshTTL = e.Limits.RefreshTTLPersistent
	}
	return p, nil
}
