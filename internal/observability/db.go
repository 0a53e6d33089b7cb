package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
	"gorm.io/plugin/opentelemetry/tracing"
)

// InstrumentDB attaches the GORM OpenTelemetry plugin so every statement
// becomes a child span of the request span carried by the query context, and
// registers the sql.DB pool statistics with reg under the db_name label.
//
// Query variables are left out of spans; they may carry user input.
// A nil reg skips the pool metrics.
func InstrumentDB(db *gorm.DB, reg prometheus.Registerer, name string) error {
	if err := db.Use(tracing.NewPlugin(
		tracing.WithoutQueryVariables(),
		tracing.WithoutMetrics(),
	)); err != nil {
		return fmt.Errorf("gorm tracing plugin: %w", err)
	}
	if reg == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := reg.Register(collectors.NewDBStatsCollector(sqlDB, name)); err != nil {
		return fmt.Errorf("register db stats: %w", err)
	}
	return nil
}
