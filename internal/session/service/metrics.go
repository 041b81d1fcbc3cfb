package service

import (
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/advancia-platform/credential-lifecycle/internal/session/service"

type instruments struct {
	created  metric.Int64Counter
	evicted  metric.Int64Counter
	revoked  metric.Int64Counter
	rotated  metric.Int64Counter
	rejected metric.Int64Counter
}

func newInstruments(m metric.Meter) (*instruments, error) {
	var (
		in  instruments
		err error
	)
	if in.created, err = m.Int64Counter("sessions.created", metric.WithDescription("Sessions created")); err != nil {
		return nil, err
	}
	if in.evicted, err = m.Int64Counter("sessions.evicted", metric.WithDescription("Sessions revoked by admission control")); err != nil {
		return nil, err
	}
	if in.revoked, err = m.Int64Counter("sessions.revoked", metric.WithDescription("Sessions revoked explicitly")); err != nil {
		return nil, err
	}
	if in.rotated, err = m.Int64Counter("credentials.rotated", metric.WithDescription("Refresh secrets rotated")); err != nil {
		return nil, err
	}
	if in.rejected, err = m.Int64Counter("credentials.rejected", metric.WithDescription("Rejected refresh or access credentials by reason")); err != nil {
		return nil, err
	}
	return &in, nil
}
