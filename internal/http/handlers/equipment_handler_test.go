package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/tbourn/go-maintenance-backend/internal/domain"
	"github.com/tbourn/go-maintenance-backend/internal/services"
)

func equipmentOnly(s stubEquipment) *Handlers {
	return New(s, stubTechnicians{}, stubMaintenance{})
}

func TestCreateEquipment_201_PassesInput(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var got services.EquipmentInput
	h := equipmentOnly(stubEquipment{
		create: func(_ context.Context, in services.EquipmentInput) (domain.EquipmentView, error) {
			got = in
			return domain.EquipmentView{Name: in.Name, Model: in.Model, Sector: in.Sector, Impact: in.Impact, InsertedAt: *in.InsertedAt}, nil
		},
	})
	r := newTestRouter(h, nil)

	w := do(t, r, http.MethodPost, "/equipment", map[string]any{
		"name": "Press-01", "model": "X200", "sector": "A1", "impact": "High",
		"inserted_at": at.Format(time.RFC3339),
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if got.Name != "Press-01" || got.Impact != domain.ImpactHigh || got.InsertedAt == nil || !got.InsertedAt.Equal(at) {
		t.Fatalf("unexpected input: %+v", got)
	}
	v := decode[domain.EquipmentView](t, w)
	if v.Name != "Press-01" || v.Sector != "A1" {
		t.Fatalf("unexpected body: %+v", v)
	}
}

func TestCreateEquipment_Errors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"duplicate", &services.Error{Kind: services.KindDuplicate, Msg: "equipment Press-01 already exists"}, http.StatusConflict, ErrCodeDuplicate},
		{"constraint", &services.Error{Kind: services.KindConstraintViolation, Msg: "impact must be one of High, Medium, Low"}, http.StatusBadRequest, ErrCodeConstraintViolation},
		{"creation failed", &services.Error{Kind: services.KindCreationFailed, Msg: "could not create equipment"}, http.StatusInternalServerError, ErrCodeCreationFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := equipmentOnly(stubEquipment{
				create: func(context.Context, services.EquipmentInput) (domain.EquipmentView, error) {
					return domain.EquipmentView{}, tc.err
				},
			})
			w := do(t, newTestRouter(h, nil), http.MethodPost, "/equipment", map[string]any{"name": "Press-01", "impact": "High"}, nil)
			er := expectError(t, w, tc.status, tc.code)
			if er.Message != services.MessageOf(tc.err) {
				t.Fatalf("message=%q", er.Message)
			}
		})
	}
}

func TestCreateEquipment_BadJSON(t *testing.T) {
	h := equipmentOnly(stubEquipment{})
	w := do(t, newTestRouter(h, nil), http.MethodPost, "/equipment", `{"name":`, nil)
	expectError(t, w, http.StatusBadRequest, ErrCodeBadRequest)
}

func TestListEquipment_EmptyAndFailure(t *testing.T) {
	h := equipmentOnly(stubEquipment{
		findAll: func(context.Context) ([]domain.EquipmentView, error) { return []domain.EquipmentView{}, nil },
	})
	w := do(t, newTestRouter(h, nil), http.MethodGet, "/equipment", nil, nil)
	if w.Code != http.StatusOK || w.Body.String() != `{"equipment":[]}` {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	h = equipmentOnly(stubEquipment{
		findAll: func(context.Context) ([]domain.EquipmentView, error) {
			return nil, &services.Error{Kind: services.KindTransientFailure, Msg: "could not list equipment"}
		},
	})
	w = do(t, newTestRouter(h, nil), http.MethodGet, "/equipment", nil, nil)
	expectError(t, w, http.StatusServiceUnavailable, ErrCodeTransientFailure)
}

func TestGetEquipment_FoundAndNotFound(t *testing.T) {
	h := equipmentOnly(stubEquipment{
		findOne: func(_ context.Context, name string) (domain.EquipmentView, error) {
			if name == "Press-01" {
				return domain.EquipmentView{Name: name, Impact: domain.ImpactLow}, nil
			}
			return domain.EquipmentView{}, &services.Error{Kind: services.KindNotFound, Msg: "equipment " + name + " not found"}
		},
	})
	r := newTestRouter(h, nil)

	w := do(t, r, http.MethodGet, "/equipment/Press-01", nil, nil)
	if w.Code != http.StatusOK || decode[domain.EquipmentView](t, w).Name != "Press-01" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/equipment/press-01", nil, nil)
	er := expectError(t, w, http.StatusNotFound, ErrCodeNotFound)
	if er.Message != "equipment press-01 not found" {
		t.Fatalf("message=%q", er.Message)
	}
}

func TestDeleteEquipment_OkDependencyAndNotFound(t *testing.T) {
	h := equipmentOnly(stubEquipment{
		del: func(_ context.Context, name string) (string, error) {
			switch name {
			case "Press-01":
				return name, nil
			case "Lathe-02":
				return "", &services.Error{Kind: services.KindDependencyExists, Msg: "equipment Lathe-02 is linked to ongoing maintenance"}
			}
			return "", &services.Error{Kind: services.KindNotFound, Msg: "equipment not found"}
		},
	})
	r := newTestRouter(h, nil)

	w := do(t, r, http.MethodDelete, "/equipment/Press-01", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if resp := decode[DeleteEquipmentResponse](t, w); resp.Name != "Press-01" || resp.Message == "" {
		t.Fatalf("unexpected body: %+v", resp)
	}

	w = do(t, r, http.MethodDelete, "/equipment/Lathe-02", nil, nil)
	er := expectError(t, w, http.StatusConflict, ErrCodeDependencyExists)
	if er.Message != "equipment Lathe-02 is linked to ongoing maintenance" {
		t.Fatalf("message=%q", er.Message)
	}

	w = do(t, r, http.MethodDelete, "/equipment/ghost", nil, nil)
	expectError(t, w, http.StatusNotFound, ErrCodeNotFound)
}
