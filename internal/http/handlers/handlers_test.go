package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-maintenance-backend/internal/domain"
	"github.com/tbourn/go-maintenance-backend/internal/http/middleware"
	"github.com/tbourn/go-maintenance-backend/internal/services"
)

// ---------- stubs ----------

type stubEquipment struct {
	create  func(context.Context, services.EquipmentInput) (domain.EquipmentView, error)
	findAll func(context.Context) ([]domain.EquipmentView, error)
	findOne func(context.Context, string) (domain.EquipmentView, error)
	del     func(context.Context, string) (string, error)
}

func (s stubEquipment) Create(ctx context.Context, in services.EquipmentInput) (domain.EquipmentView, error) {
	return s.create(ctx, in)
}
func (s stubEquipment) FindAll(ctx context.Context) ([]domain.EquipmentView, error) {
	return s.findAll(ctx)
}
func (s stubEquipment) FindOne(ctx context.Context, name string) (domain.EquipmentView, error) {
	return s.findOne(ctx, name)
}
func (s stubEquipment) Delete(ctx context.Context, name string) (string, error) {
	return s.del(ctx, name)
}

type stubTechnicians struct {
	create  func(context.Context, services.TechnicianInput) (domain.TechnicianView, error)
	findAll func(context.Context) ([]domain.TechnicianView, error)
	findOne func(context.Context, string, string) (domain.TechnicianView, error)
	del     func(context.Context, string) (string, error)
}

func (s stubTechnicians) Create(ctx context.Context, in services.TechnicianInput) (domain.TechnicianView, error) {
	return s.create(ctx, in)
}
func (s stubTechnicians) FindAll(ctx context.Context) ([]domain.TechnicianView, error) {
	return s.findAll(ctx)
}
func (s stubTechnicians) FindOne(ctx context.Context, name, reg string) (domain.TechnicianView, error) {
	return s.findOne(ctx, name, reg)
}
func (s stubTechnicians) Delete(ctx context.Context, reg string) (string, error) {
	return s.del(ctx, reg)
}

type stubMaintenance struct {
	create   func(context.Context, string, services.MaintenanceInput) (domain.MaintenanceView, bool, error)
	byStatus func(context.Context, string) ([]domain.MaintenanceView, error)
	list     func(context.Context, domain.MaintenanceFilter) ([]domain.MaintenanceView, error)
	stats    func(context.Context, domain.MaintenanceFilter) (int64, uint, *time.Time, error)
	findOne  func(context.Context, uint) (domain.MaintenanceView, error)
	patch    func(context.Context, uint, domain.MaintenancePatch) (domain.MaintenanceView, error)
	del      func(context.Context, uint) (uint, error)
}

func (s stubMaintenance) CreateIdempotent(ctx context.Context, key string, in services.MaintenanceInput) (domain.MaintenanceView, bool, error) {
	return s.create(ctx, key, in)
}
func (s stubMaintenance) FindByStatus(ctx context.Context, status string) ([]domain.MaintenanceView, error) {
	return s.byStatus(ctx, status)
}
func (s stubMaintenance) List(ctx context.Context, f domain.MaintenanceFilter) ([]domain.MaintenanceView, error) {
	return s.list(ctx, f)
}
func (s stubMaintenance) Stats(ctx context.Context, f domain.MaintenanceFilter) (int64, uint, *time.Time, error) {
	if s.stats == nil {
		return 0, 0, nil, services.ErrTransientFailure
	}
	return s.stats(ctx, f)
}
func (s stubMaintenance) FindOne(ctx context.Context, id uint) (domain.MaintenanceView, error) {
	return s.findOne(ctx, id)
}
func (s stubMaintenance) PartialUpdate(ctx context.Context, id uint, p domain.MaintenancePatch) (domain.MaintenanceView, error) {
	return s.patch(ctx, id, p)
}
func (s stubMaintenance) Delete(ctx context.Context, id uint) (uint, error) {
	return s.del(ctx, id)
}

// ---------- helpers ----------

// newTestRouter mounts every handler the way the router does, with the
// idempotency middleware in front of the maintenance routes.
func newTestRouter(h *Handlers, lookup middleware.IdempotencyLookup) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())

	r.POST("/equipment", h.CreateEquipment)
	r.GET("/equipment", h.ListEquipment)
	r.GET("/equipment/:name", h.GetEquipment)
	r.DELETE("/equipment/:name", h.DeleteEquipment)

	r.POST("/technicians", h.CreateTechnician)
	r.GET("/technicians", h.ListTechnicians)
	r.GET("/technicians/search", h.FindTechnician)
	r.DELETE("/technicians/:registration", h.DeleteTechnician)

	m := r.Group("/maintenance", middleware.IdempotencyValidator(middleware.IdempotencyOptions{}, lookup))
	m.POST("", h.CreateMaintenance)
	m.GET("", h.ListMaintenance)
	m.GET("/status/:status", h.ListMaintenanceByStatus)
	m.GET("/:id", h.GetMaintenance)
	m.PATCH("/:id", h.PatchMaintenance)
	m.DELETE("/:id", h.DeleteMaintenance)
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	switch b := body.(type) {
	case nil:
		rd = bytes.NewReader(nil)
	case string:
		rd = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

// expectError asserts the status and envelope code of an error response.
func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) ErrorResponse {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status=%d want %d body=%s", w.Code, status, w.Body.String())
	}
	er := decode[ErrorResponse](t, w)
	if er.Code != code {
		t.Fatalf("code=%q want %q", er.Code, code)
	}
	if er.RequestID == "" {
		t.Fatalf("error envelope should carry the request id")
	}
	return er
}
