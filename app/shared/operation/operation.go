// Package operation wraps service operations with tracing, metrics, logging
// and panic recovery.
package operation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/XdrBOBX/rating-widget/app/shared/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Telemetry bundles what every operation reports to.
type Telemetry struct {
	Service string
	Logger  *slog.Logger
	Tracer  trace.Tracer
	Metrics metrics.OperationMetrics

	// Expected classifies errors that are part of normal operation, such as
	// rejected input. They are logged at Warn and do not count as failures.
	Expected func(error) bool
}

// Run executes op inside a span named after the operation. identifier is the
// guild or user the operation acts on and may be empty.
func Run[T any](
	ctx context.Context,
	t Telemetry,
	name string,
	identifier string,
	op func(ctx context.Context) (T, error),
) (result T, err error) {
	ctx, span := t.Tracer.Start(ctx, t.Service+"."+name, trace.WithAttributes(
		attribute.String("operation", name),
		attribute.String("identifier", identifier),
	))
	defer span.End()

	t.Metrics.RecordOperationAttempt(ctx, name)

	start := time.Now()
	defer func() {
		t.Metrics.RecordOperationDuration(ctx, name, time.Since(start))
	}()

	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			err = fmt.Errorf("panic in %s: %v", name, r)
			t.Logger.ErrorContext(ctx, "Critical panic recovered",
				slog.String("operation", name),
				slog.String("identifier", identifier),
				slog.Any("error", err),
			)
			t.Metrics.RecordOperationFailure(ctx, name)
			span.RecordError(err)
			span.SetStatus(codes.Error, "panic")
		}
	}()

	t.Logger.DebugContext(ctx, "Operation triggered",
		slog.String("operation", name),
		slog.String("identifier", identifier),
	)

	result, err = op(ctx)
	if err != nil {
		if t.Expected != nil && t.Expected(err) {
			t.Logger.WarnContext(ctx, "Operation rejected",
				slog.String("operation", name),
				slog.String("identifier", identifier),
				slog.String("reason", err.Error()),
			)
			t.Metrics.RecordOperationSuccess(ctx, name)
			return result, err
		}

		t.Logger.ErrorContext(ctx, "Operation failed with error",
			slog.String("operation", name),
			slog.String("identifier", identifier),
			slog.Any("error", err),
		)
		t.Metrics.RecordOperationFailure(ctx, name)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return result, fmt.Errorf("%s: %w", name, err)
	}

	t.Logger.InfoContext(ctx, "Operation completed successfully",
		slog.String("operation", name),
		slog.String("identifier", identifier),
	)
	t.Metrics.RecordOperationSuccess(ctx, name)
	return result, nil
}
