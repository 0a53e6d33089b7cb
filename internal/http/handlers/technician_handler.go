// Technician HTTP handlers.
//
//   - POST   /technicians                  (create)
//   - GET    /technicians                  (list)
//   - GET    /technicians/search           (fetch by name OR registration)
//   - DELETE /technicians/{registration}   (delete when unreferenced)
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-maintenance-backend/internal/domain"
	"github.com/tbourn/go-maintenance-backend/internal/services"
)

// CreateTechnicianRequest is the JSON payload for registering a technician.
type CreateTechnicianRequest struct {
	Name               string `json:"name"                example:"Ana"`
	RegistrationNumber string `json:"registration_number" example:"T100"`
	Shift              string `json:"shift"               example:"Day"`
}

// ListTechniciansResponse wraps all technicians.
type ListTechniciansResponse struct {
	Technicians []domain.TechnicianView `json:"technicians"`
}

// DeleteTechnicianResponse confirms a deletion.
type DeleteTechnicianResponse struct {
	Message            string `json:"message"             example:"technician deleted"`
	RegistrationNumber string `json:"registration_number" example:"T100"`
}

// CreateTechnician godoc
// @ID          createTechnician
// @Summary     Register a technician
// @Tags        Technicians
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateTechnicianRequest  true  "Technician payload"
//
// @Success     201  {object}  domain.TechnicianView
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid input"
// @Failure     409  {object}  handlers.ErrorResponse  "Registration number already taken"
// @Failure     500  {object}  handlers.ErrorResponse  "Creation failed"
// @Router      /technicians [post]
func (h *Handlers) CreateTechnician(c *gin.Context) {
	var req CreateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	v, err := h.techSvc.Create(c.Request.Context(), services.TechnicianInput(req))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, v)
}

// ListTechnicians godoc
// @ID          listTechnicians
// @Summary     List technicians
// @Tags        Technicians
// @Produce     json
//
// @Success     200  {object}  handlers.ListTechniciansResponse
// @Failure     503  {object}  handlers.ErrorResponse  "Store unavailable"
// @Router      /technicians [get]
func (h *Handlers) ListTechnicians(c *gin.Context) {
	items, err := h.techSvc.FindAll(c.Request.Context())
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ListTechniciansResponse{Technicians: items})
}

// FindTechnician godoc
// @ID          findTechnician
// @Summary     Find a technician
// @Description Returns the first technician whose name OR registration number matches.
// @Tags        Technicians
// @Produce     json
//
// @Param       name                 query  string  false  "Technician name"      example(Ana)
// @Param       registration_number  query  string  false  "Registration number"  example(T100)
//
// @Success     200  {object}  domain.TechnicianView
// @Failure     400  {object}  handlers.ErrorResponse  "No filter given"
// @Failure     404  {object}  handlers.ErrorResponse  "No match"
// @Router      /technicians/search [get]
func (h *Handlers) FindTechnician(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	reg := strings.TrimSpace(c.Query("registration_number"))

	v, err := h.techSvc.FindOne(c.Request.Context(), name, reg)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, v)
}

// DeleteTechnician godoc
// @ID          deleteTechnician
// @Summary     Delete a technician
// @Description Removes a technician that no maintenance work-order references.
// @Tags        Technicians
// @Produce     json
//
// @Param       registration  path  string  true  "Registration number"  example(T100)
//
// @Success     200  {object}  handlers.DeleteTechnicianResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Technician not found"
// @Failure     409  {object}  handlers.ErrorResponse  "Linked to maintenance"
// @Failure     503  {object}  handlers.ErrorResponse  "Store unavailable"
// @Router      /technicians/{registration} [delete]
func (h *Handlers) DeleteTechnician(c *gin.Context) {
	reg, err := h.techSvc.Delete(c.Request.Context(), c.Param("registration"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, DeleteTechnicianResponse{Message: "technician deleted", RegistrationNumber: reg})
}
