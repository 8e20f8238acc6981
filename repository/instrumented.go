package repository

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	dbOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "inventory",
			Subsystem: "db",
			Name:      "operation_duration_seconds",
			Help:      "Database operation duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"table", "operation"},
	)

	dbOperationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "inventory",
			Subsystem: "db",
			Name:      "operations_total",
			Help:      "Total database operations by result",
		},
		[]string{"table", "operation", "result"},
	)
)

const slowQueryThreshold = 100 * time.Millisecond

// instrument runs fn, records its duration and outcome, and logs failures.
// The error is handed back untouched.
func instrument[R any](ctx context.Context, logger *zap.Logger, table, operation string, fn func() (R, error)) (R, error) {
	start := time.Now()
	result, err := fn()
	duration := time.Since(start)

	dbOperationDuration.WithLabelValues(table, operation).Observe(duration.Seconds())

	if err != nil {
		dbOperationTotal.WithLabelValues(table, operation, classifyError(ctx, err)).Inc()
		logger.Error("database operation failed",
			zap.String("table", table),
			zap.String("operation", operation),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return result, err
	}

	dbOperationTotal.WithLabelValues(table, operation, "success").Inc()
	if duration > slowQueryThreshold {
		logger.Warn("slow database operation",
			zap.String("table", table),
			zap.String("operation", operation),
			zap.Duration("duration", duration),
		)
	}
	return result, nil
}

func classifyError(ctx context.Context, err error) string {
	switch {
	case errors.Is(err, context.Canceled), ctx.Err() == context.Canceled:
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return "duplicate_key"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return "foreign_key"
	default:
		return "error"
	}
}
