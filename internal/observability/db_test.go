package observability

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/tbourn/go-maintenance-backend/internal/config"
	"github.com/tbourn/go-maintenance-backend/internal/domain"
	"github.com/tbourn/go-maintenance-backend/internal/repo"
)

func TestInstrumentDB_RecordsSpansAndPoolMetrics(t *testing.T) {
	keepGlobals(t)

	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	otel.SetTracerProvider(tp)

	db, err := repo.OpenSQLite(filepath.Join(t.TempDir(), "otel.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close(db) })
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	reg := prometheus.NewRegistry()
	if err := InstrumentDB(db, reg, "maintenance"); err != nil {
		t.Fatalf("InstrumentDB: %v", err)
	}

	ctx, parent := tp.Tracer("test").Start(context.Background(), "request")
	if _, err := repo.ListEquipment(ctx, db); err != nil {
		t.Fatalf("list: %v", err)
	}
	parent.End()

	var sqlSpans int
	for _, s := range rec.Ended() {
		if s.Name() == "request" {
			continue
		}
		sqlSpans++
		if s.Parent().SpanID() != parent.SpanContext().SpanID() {
			t.Fatalf("sql span %q is not a child of the request span", s.Name())
		}
	}
	if sqlSpans == 0 {
		t.Fatalf("expected at least one SQL span")
	}

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, mf := range mfs {
		if mf.GetName() != "go_sql_max_open_connections" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "db_name" && lp.GetValue() == "maintenance" {
					found = true
				}
			}
		}
	}
	if !found {
		t.Fatalf("db stats collector not registered")
	}

	// instrumenting the same handle twice fails
	if err := InstrumentDB(db, reg, "maintenance"); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestInstrumentDB_NilRegistry(t *testing.T) {
	db, err := repo.OpenSQLite(filepath.Join(t.TempDir(), "otel-nil.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close(db) })
	if err := InstrumentDB(db, nil, "x"); err != nil {
		t.Fatalf("InstrumentDB: %v", err)
	}
	if err := db.AutoMigrate(&domain.Equipment{}); err != nil {
		t.Fatalf("instrumented db unusable: %v", err)
	}
}

func TestExporterOptions(t *testing.T) {
	if n := len(exporterOptions(config.OTELConfig{Endpoint: "otel:4317", Insecure: true})); n != 2 {
		t.Fatalf("insecure options = %d; want 2", n)
	}
	if n := len(exporterOptions(config.OTELConfig{Endpoint: "otel:4317"})); n != 2 {
		t.Fatalf("tls options = %d; want 2", n)
	}
}
