// Equipment HTTP handlers.
//
//   - POST   /equipment          (create)
//   - GET    /equipment          (list)
//   - GET    /equipment/{name}   (fetch)
//   - DELETE /equipment/{name}   (delete when no maintenance references it)
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-maintenance-backend/internal/domain"
	"github.com/tbourn/go-maintenance-backend/internal/services"
)

// CreateEquipmentRequest is the JSON payload for registering equipment.
type CreateEquipmentRequest struct {
	Name   string `json:"name"   example:"Press-01"`
	Model  string `json:"model"  example:"X200"`
	Sector string `json:"sector" example:"A1"`
	// Impact is one of High, Medium, Low.
	Impact string `json:"impact" example:"High" enums:"High,Medium,Low"`
	// InsertedAt defaults to the creation time when omitted.
	InsertedAt *time.Time `json:"inserted_at,omitempty"`
}

// ListEquipmentResponse wraps all equipment.
type ListEquipmentResponse struct {
	Equipment []domain.EquipmentView `json:"equipment"`
}

// DeleteEquipmentResponse confirms a deletion.
type DeleteEquipmentResponse struct {
	Message string `json:"message" example:"equipment deleted"`
	Name    string `json:"name"    example:"Press-01"`
}

// CreateEquipment godoc
// @ID          createEquipment
// @Summary     Register equipment
// @Description Creates an equipment record keyed by its unique name.
// @Tags        Equipment
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateEquipmentRequest  true  "Equipment payload"
//
// @Success     201  {object}  domain.EquipmentView
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid input"
// @Failure     409  {object}  handlers.ErrorResponse  "Name already taken"
// @Failure     500  {object}  handlers.ErrorResponse  "Creation failed"
// @Router      /equipment [post]
func (h *Handlers) CreateEquipment(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	v, err := h.equipSvc.Create(c.Request.Context(), services.EquipmentInput{
		Name:       req.Name,
		Model:      req.Model,
		Sector:     req.Sector,
		Impact:     domain.Impact(req.Impact),
		InsertedAt: req.InsertedAt,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, v)
}

// ListEquipment godoc
// @ID          listEquipment
// @Summary     List equipment
// @Tags        Equipment
// @Produce     json
//
// @Success     200  {object}  handlers.ListEquipmentResponse
// @Failure     503  {object}  handlers.ErrorResponse  "Store unavailable"
// @Router      /equipment [get]
func (h *Handlers) ListEquipment(c *gin.Context) {
	items, err := h.equipSvc.FindAll(c.Request.Context())
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ListEquipmentResponse{Equipment: items})
}

// GetEquipment godoc
// @ID          getEquipment
// @Summary     Fetch equipment by name
// @Tags        Equipment
// @Produce     json
//
// @Param       name  path  string  true  "Equipment name (case-sensitive)"  example(Press-01)
//
// @Success     200  {object}  domain.EquipmentView
// @Failure     404  {object}  handlers.ErrorResponse  "Equipment not found"
// @Router      /equipment/{name} [get]
func (h *Handlers) GetEquipment(c *gin.Context) {
	v, err := h.equipSvc.FindOne(c.Request.Context(), c.Param("name"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, v)
}

// DeleteEquipment godoc
// @ID          deleteEquipment
// @Summary     Delete equipment
// @Description Removes equipment that no maintenance work-order references.
// @Tags        Equipment
// @Produce     json
//
// @Param       name  path  string  true  "Equipment name"  example(Press-01)
//
// @Success     200  {object}  handlers.DeleteEquipmentResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Equipment not found"
// @Failure     409  {object}  handlers.ErrorResponse  "Linked to maintenance"
// @Failure     503  {object}  handlers.ErrorResponse  "Store unavailable"
// @Router      /equipment/{name} [delete]
func (h *Handlers) DeleteEquipment(c *gin.Context) {
	name, err := h.equipSvc.Delete(c.Request.Context(), c.Param("name"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, DeleteEquipmentResponse{Message: "equipment deleted", Name: name})
}
