package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/open-policy-agent/opa/v1/ast"
	"github.com/open-policy-agent/opa/v1/rego"

	policydomain "github.com/advancia-platform/credential-lifecycle/internal/policy/domain"
)

const decisionQuery = "data.sessions.policy.decision"

// DefaultRegoPolicy reproduces StaticEvaluator. Operators replace it to change the class mapping.
const DefaultRegoPolicy = `package sessions.policy

default max_concurrent_sessions := 0

max_concurrent_sessions := input.limits.max_concurrent_elevated if {
	input.principal.class == "elevated"
}

max_concurrent_sessions := input.limits.max_concurrent_standard if {
	input.principal.class != "elevated"
}

refresh_ttl_seconds := input.limits.refresh_ttl_persistent_seconds if {
	input.request.persistent
}

refresh_ttl_seconds := input.limits.refresh_ttl_default_seconds if {
	not input.request.persistent
}

default extend_on_activity := true

decision := {
	"max_concurrent_sessions": max_concurrent_sessions,
	"refresh_ttl_seconds": refresh_ttl_seconds,
	"extend_on_activity": extend_on_activity,
}
`

// OPAEvaluator resolves session policy with a Rego module compiled once at construction.
// Evaluation failures fall back to a StaticEvaluator over the same limits and are logged.
type OPAEvaluator struct {
	limits   policydomain.Limits
	query    rego.PreparedEvalQuery
	fallback *StaticEvaluator
	logger   *slog.Logger
}

// NewOPAEvaluator compiles module (DefaultRegoPolicy when empty). The module must define
// data.sessions.policy.decision.
func NewOPAEvaluator(ctx context.Context, limits policydomain.Limits, module string, logger *slog.Logger) (*OPAEvaluator, error) {
	if module == "" {
		module = DefaultRegoPolicy
	}
	if logger == nil {
		logger = slog.Default()
	}
	compiler, err := ast.CompileModules(map[string]string{"sessions_policy.rego": module})
	if err != nil {
		return nil, fmt.Errorf("compile session policy: %w", err)
	}
	q, err := rego.New(
		rego.Query(decisionQuery),
		rego.Compiler(compiler),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("prepare session policy: %w", err)
	}
	return &OPAEvaluator{
		limits:   limits,
		query:    q,
		fallback: NewStaticEvaluator(limits),
		logger:   logger,
	}, nil
}

// HealthCheck evaluates the compiled policy for a standard principal.
func (e *OPAEvaluator) HealthCheck(ctx context.Context) error {
	_, err := e.evaluate(ctx, Request{Class: "standard"})
	return err
}

// Resolve evaluates the policy for req. It only returns an error when ctx is done.
func (e *OPAEvaluator) Resolve(ctx context.Context, req Request) (policydomain.SessionPolicy, error) {
	if err := ctx.Err(); err != nil {
		return policydomain.SessionPolicy{}, err
	}
	p, err := e.evaluate(ctx, req)
	if err == nil {
		return p, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return policydomain.SessionPolicy{}, ctxErr
	}
	e.logger.WarnContext(ctx, "session policy evaluation failed, using static limits",
		slog.String("principal_class", string(req.Class)),
		slog.Any("error", err))
	return e.fallback.Resolve(ctx, req)
}

func (e *OPAEvaluator) evaluate(ctx context.Context, req Request) (policydomain.SessionPolicy, error) {
	rs, err := e.query.Eval(ctx, rego.EvalInput(e.buildInput(req)))
	if err != nil {
		return policydomain.SessionPolicy{}, fmt.Errorf("eval: %w", err)
	}
	if len(rs) == 0 || len(rs[0].Expressions) == 0 {
		return policydomain.SessionPolicy{}, fmt.Errorf("%w: undefined", ErrInvalidDecision)
	}
	decision, ok := rs[0].Expressions[0].Value.(map[string]interface{})
	if !ok {
		return policydomain.SessionPolicy{}, fmt.Errorf("%w: not an object", ErrInvalidDecision)
	}
	maxSessions, ok := toInt64(decision["max_concurrent_sessions"])
	if !ok {
		return policydomain.SessionPolicy{}, fmt.Errorf("%w: max_concurrent_sessions", ErrInvalidDecision)
	}
	ttlSeconds, ok := toInt64(decision["refresh_ttl_seconds"])
	if !ok || ttlSeconds <= 0 {
		return policydomain.SessionPolicy{}, fmt.Errorf("%w: refresh_ttl_seconds", ErrInvalidDecision)
	}
	extend, ok := decision["extend_on_activity"].(bool)
	if !ok {
		return policydomain.SessionPolicy{}, fmt.Errorf("%w: extend_on_activity", ErrInvalidDecision)
	}
	return policydomain.SessionPolicy{
		MaxConcurrentSessions: int(maxSessions),
		RefreshTTL:            time.Duration(ttlSeconds) * time.Second,
		ExtendOnActivity:      extend,
	}, nil
}

func (e *OPAEvaluator) buildInput(req Request) map[string]interface{} {
	return map[string]interface{}{
		"principal": map[string]interface{}{
			"id":    req.PrincipalID,
			"class": string(req.Class),
		},
		"request": map[string]interface{}{
			"persistent": req.Persistent,
		},
		"limits": map[string]interface{}{
			"max_concurrent_standard":        e.limits.MaxConcurrentStandard,
			"max_concurrent_elevated":        e.limits.MaxConcurrentElevated,
			"refresh_ttl_default_seconds":    int64(e.limits.RefreshTTLDefault / time.Second),
			"refresh_ttl_persistent_seconds": int64(e.limits.RefreshTTLPersistent / time.Second),
		},
	}
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}
