// Maintenance HTTP handlers.
//
//   - POST   /maintenance                  (create, optional Idempotency-Key)
//   - GET    /maintenance                  (list with filters, weak ETag)
//   - GET    /maintenance/status/{status}  (find by status)
//   - GET    /maintenance/{id}             (fetch)
//   - PATCH  /maintenance/{id}             (partial update)
//   - DELETE /maintenance/{id}             (delete)
//
// Idempotency:
// When the client repeats an Idempotency-Key within its TTL, the originally
// created work-order is returned with 200 and `Idempotent-Replayed: true`
// instead of inserting again.
package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-maintenance-backend/internal/domain"
	"github.com/tbourn/go-maintenance-backend/internal/http/middleware"
	"github.com/tbourn/go-maintenance-backend/internal/services"
	"github.com/tbourn/go-maintenance-backend/internal/utils"
)

//
// DTOs
//

// CreateMaintenanceRequest is the JSON payload for opening a work-order.
type CreateMaintenanceRequest struct {
	EquipmentName          string `json:"equipment_name"          example:"Press-01"`
	TechnicianRegistration string `json:"technician_registration" example:"T100"`
	Status                 string `json:"status"                  example:"In Progress"`
	MaintenanceType        string `json:"maintenance_type"        example:"Preventive"`
	Comment                string `json:"comment"                 example:"replace belt"`
	// ExpectedCompletion accepts RFC 3339 or dd/mm/yyyy HH:MM (UTC).
	ExpectedCompletion string `json:"expected_completion" example:"24/10/2026 17:30"`
}

// PatchMaintenanceRequest is the JSON payload for a partial update. Absent
// (or null) fields are left untouched; unknown fields are ignored.
type PatchMaintenanceRequest struct {
	EquipmentName          *string `json:"equipment_name,omitempty"          example:"Press-02"`
	TechnicianRegistration *string `json:"technician_registration,omitempty" example:"T200"`
	Status                 *string `json:"status,omitempty"                  example:"Ready"`
	MaintenanceType        *string `json:"maintenance_type,omitempty"        example:"Corrective"`
	Comment                *string `json:"comment,omitempty"                 example:"done"`
	ExpectedCompletion     *string `json:"expected_completion,omitempty"     example:"25/10/2026 09:00"`
}

// ListMaintenanceResponse wraps a list of work-orders.
type ListMaintenanceResponse struct {
	Maintenance []domain.MaintenanceView `json:"maintenance"`
}

// DeleteMaintenanceResponse confirms a deletion.
type DeleteMaintenanceResponse struct {
	Message string `json:"message" example:"maintenance deleted"`
	ID      uint   `json:"id"      example:"1"`
}

//
// Helpers
//

// pathID parses the :id path parameter, writing a 400 when it is not a
// positive integer.
func pathID(c *gin.Context) (uint, bool) {
	id, valid := utils.ParseID(c.Param("id"))
	if !valid {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "id must be a positive integer")
	}
	return id, valid
}

// toPatch converts the request into a domain patch. A present but
// unparseable expected_completion is rejected.
func (r PatchMaintenanceRequest) toPatch() (domain.MaintenancePatch, error) {
	p := domain.MaintenancePatch{
		EquipmentName:          r.EquipmentName,
		TechnicianRegistration: r.TechnicianRegistration,
		Status:                 r.Status,
		MaintenanceType:        r.MaintenanceType,
		Comment:                r.Comment,
	}
	if r.ExpectedCompletion != nil {
		t, err := domain.ParseCompletion(*r.ExpectedCompletion)
		if err != nil {
			return p, err
		}
		p.ExpectedCompletion = &t
	}
	return p, nil
}

// listETag builds the weak validator for a filtered listing. It changes
// whenever a row is added, removed or updated.
func listETag(f domain.MaintenanceFilter, count int64, maxID uint, maxTS *time.Time) string {
	var ts int64
	if maxTS != nil {
		ts = maxTS.UnixNano()
	}
	scope := strings.Join([]string{f.Status, f.EquipmentName, f.TechnicianRegistration}, "|")
	return fmt.Sprintf(`W/"maintenance:%x:%d:%d:%d"`, scope, count, maxID, ts)
}

//
// Handlers
//

// CreateMaintenance godoc
// @ID          createMaintenance
// @Summary     Open a maintenance work-order
// @Description Creates a work-order linking existing equipment and technician. An equipment
// @Description can have only one open (non-Ready) work-order at a time.
// @Description Supports idempotency via the Idempotency-Key header (same key → same work-order).
// @Tags        Maintenance
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false  "Idempotency key for safe retries"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       body             body    handlers.CreateMaintenanceRequest  true  "Work-order payload"
//
// @Success     201  {object}  domain.MaintenanceView  "Created"
// @Success     200  {object}  domain.MaintenanceView  "Replayed"
// @Header      200  {string}  Idempotent-Replayed     "true when the response is a replay"
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid input"
// @Failure     404  {object}  handlers.ErrorResponse  "Replayed work-order no longer exists"
// @Failure     409  {object}  handlers.ErrorResponse  "Equipment already under maintenance"
// @Failure     422  {object}  handlers.ErrorResponse  "Unknown equipment or technician"
// @Failure     500  {object}  handlers.ErrorResponse  "Creation failed"
// @Router      /maintenance [post]
func (h *Handlers) CreateMaintenance(c *gin.Context) {
	var req CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	in := services.MaintenanceInput{
		EquipmentName:          req.EquipmentName,
		TechnicianRegistration: req.TechnicianRegistration,
		Status:                 req.Status,
		MaintenanceType:        req.MaintenanceType,
		Comment:                req.Comment,
	}
	// A blank value is left zero so the service reports it as missing.
	if strings.TrimSpace(req.ExpectedCompletion) != "" {
		t, err := domain.ParseCompletion(req.ExpectedCompletion)
		if err != nil {
			fail(c, http.StatusBadRequest, ErrCodeConstraintViolation, err.Error())
			return
		}
		in.ExpectedCompletion = t
	}

	key, _ := middleware.GetIdempotencyKey(c)
	v, replayed, err := h.maintSvc.CreateIdempotent(c.Request.Context(), key, in)
	if err != nil {
		failErr(c, err)
		return
	}
	if replayed {
		c.Header(middleware.HeaderIdempotentReplayed, "true")
		ok(c, http.StatusOK, v)
		return
	}
	ok(c, http.StatusCreated, v)
}

// ListMaintenance godoc
// @ID          listMaintenance
// @Summary     List maintenance work-orders
// @Description Returns every work-order, optionally filtered. Filters are trimmed and match
// @Description exactly. Supports weak ETag via If-None-Match.
// @Tags        Maintenance
// @Produce     json
//
// @Param       If-None-Match            header  string  false  "Return 304 if ETag matches"
// @Param       status                   query   string  false  "Status"               example(In Progress)
// @Param       equipment_name           query   string  false  "Equipment name"       example(Press-01)
// @Param       technician_registration  query   string  false  "Technician registration"  example(T100)
//
// @Success     200  {object}  handlers.ListMaintenanceResponse
// @Header      200  {string}  ETag  "Weak ETag for current result"
// @Success     304  {string}  string "Not Modified"
// @Failure     503  {object}  handlers.ErrorResponse "Store unavailable"
// @Router      /maintenance [get]
func (h *Handlers) ListMaintenance(c *gin.Context) {
	ctx := c.Request.Context()
	f := domain.MaintenanceFilter{
		Status:                 c.Query("status"),
		EquipmentName:          c.Query("equipment_name"),
		TechnicianRegistration: c.Query("technician_registration"),
	}

	// ETag pre-check (best effort).
	if count, maxID, maxTS, err := h.maintSvc.Stats(ctx, f); err == nil {
		etag := listETag(f, count, maxID, maxTS)
		c.Header("ETag", etag)
		if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
			c.Status(http.StatusNotModified)
			return
		}
	}

	items, err := h.maintSvc.List(ctx, f)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ListMaintenanceResponse{Maintenance: items})
}

// ListMaintenanceByStatus godoc
// @ID          listMaintenanceByStatus
// @Summary     Find work-orders by status
// @Tags        Maintenance
// @Produce     json
//
// @Param       status  path  string  true  "Exact status"  example(Awaiting Parts)
//
// @Success     200  {object}  handlers.ListMaintenanceResponse
// @Failure     503  {object}  handlers.ErrorResponse "Store unavailable"
// @Router      /maintenance/status/{status} [get]
func (h *Handlers) ListMaintenanceByStatus(c *gin.Context) {
	items, err := h.maintSvc.FindByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ListMaintenanceResponse{Maintenance: items})
}

// GetMaintenance godoc
// @ID          getMaintenance
// @Summary     Fetch a work-order
// @Tags        Maintenance
// @Produce     json
//
// @Param       id  path  int  true  "Work-order id"  minimum(1)
//
// @Success     200  {object}  domain.MaintenanceView
// @Failure     400  {object}  handlers.ErrorResponse  "Bad id"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Router      /maintenance/{id} [get]
func (h *Handlers) GetMaintenance(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	v, err := h.maintSvc.FindOne(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, v)
}

// PatchMaintenance godoc
// @ID          patchMaintenance
// @Summary     Partially update a work-order
// @Description Only the fields present in the body are changed. The update is atomic.
// @Tags        Maintenance
// @Accept      json
// @Produce     json
//
// @Param       id    path  int  true  "Work-order id"  minimum(1)
// @Param       body  body  handlers.PatchMaintenanceRequest  true  "Fields to change"
//
// @Success     200  {object}  domain.MaintenanceView
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid input"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     409  {object}  handlers.ErrorResponse  "Equipment already under maintenance"
// @Failure     422  {object}  handlers.ErrorResponse  "Unknown equipment or technician"
// @Failure     503  {object}  handlers.ErrorResponse  "Update rolled back"
// @Router      /maintenance/{id} [patch]
func (h *Handlers) PatchMaintenance(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	var req PatchMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	p, err := req.toPatch()
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeConstraintViolation, err.Error())
		return
	}

	v, err := h.maintSvc.PartialUpdate(c.Request.Context(), id, p)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, v)
}

// DeleteMaintenance godoc
// @ID          deleteMaintenance
// @Summary     Delete a work-order
// @Tags        Maintenance
// @Produce     json
//
// @Param       id  path  int  true  "Work-order id"  minimum(1)
//
// @Success     200  {object}  handlers.DeleteMaintenanceResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad id"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     503  {object}  handlers.ErrorResponse  "Store unavailable"
// @Router      /maintenance/{id} [delete]
func (h *Handlers) DeleteMaintenance(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	removed, err := h.maintSvc.Delete(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, DeleteMaintenanceResponse{Message: "maintenance deleted", ID: removed})
}
