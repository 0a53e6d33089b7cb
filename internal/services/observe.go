// Package services – observability helpers
//
// Every public service method opens a span, and on return reports its outcome
// through finish: the outcome counter is incremented with the failure kind
// (or "ok"), the span status is set, and failures that are not expected
// domain outcomes are logged with the operation and key through the
// request-scoped zerolog logger.
package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// opOutcomes counts service operations by operation name and outcome kind.
var opOutcomes = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "maintenance_service_operations_total",
		Help: "Total number of service operations by outcome.",
	},
	[]string{"op", "outcome"},
)

func init() {
	prometheus.MustRegister(opOutcomes)
}

const tracerName = "services"

// start opens a span named after op.
func start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, op, trace.WithAttributes(attrs...))
}

// finish records the outcome of op and returns err unchanged.
func finish(ctx context.Context, span trace.Span, op, key string, err error) error {
	if err == nil {
		opOutcomes.WithLabelValues(op, "ok").Inc()
		return nil
	}

	kind := KindOf(err)
	outcome := string(kind)
	if outcome == "" {
		outcome = "error"
	}
	opOutcomes.WithLabelValues(op, outcome).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, outcome)

	switch kind {
	case KindTransientFailure, KindCreationFailed, "":
		zerolog.Ctx(ctx).Error().
			Err(err).
			Str("op", op).
			Str("key", key).
			Msg("storage operation failed")
	}
	return err
}
