package otel

import (
	"context"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"github.com/advancia-platform/credential-lifecycle/internal/audit"
	"github.com/advancia-platform/credential-lifecycle/internal/audit/domain"
)

// AuditScope is the instrumentation scope name of audit log records.
const AuditScope = "credential-lifecycle.audit"

// recordEmitter is the part of otellog.Logger the audit writer needs.
type recordEmitter interface {
	Emit(ctx context.Context, rec otellog.Record)
}

// NewAuditWriter returns an audit.Writer that sends events as OTel log records via provider.
// If provider is nil, it returns nil and the dispatcher skips it.
func NewAuditWriter(provider *sdklog.LoggerProvider) audit.Writer {
	if provider == nil {
		return nil
	}
	return &auditWriter{logger: provider.Logger(AuditScope)}
}

type auditWriter struct {
	logger recordEmitter
}

// Write maps the event onto one log record. Failures are reported as WARN so they can be
// alerted on separately from routine transitions.
func (w *auditWriter) Write(ctx context.Context, e *domain.Event) error {
	if e == nil {
		return nil
	}
	rec := otellog.Record{}
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	rec.SetTimestamp(ts)
	rec.SetObservedTimestamp(time.Now().UTC())
	rec.SetBody(otellog.StringValue(string(e.Action)))
	if e.Outcome == domain.OutcomeFailure {
		rec.SetSeverity(otellog.SeverityWarn)
		rec.SetSeverityText("WARN")
	} else {
		rec.SetSeverity(otellog.SeverityInfo)
		rec.SetSeverityText("INFO")
	}
	rec.AddAttributes(
		otellog.String("event_id", e.ID),
		otellog.String("action", string(e.Action)),
		otellog.String("outcome", string(e.Outcome)),
	)
	for _, kv := range []struct{ k, v string }{
		{"principal_id", e.PrincipalID},
		{"session_id", e.SessionID},
		{"actor_ip", e.ActorIP},
		{"user_agent", e.UserAgent},
		{"detail", e.Detail},
	} {
		if kv.v != "" {
			rec.AddAttributes(otellog.String(kv.k, kv.v))
		}
	}
	w.logger.Emit(ctx, rec)
	return nil
}
