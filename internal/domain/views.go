package domain

import (
	"errors"
	"strings"
	"time"
)

// CompletionLayout is the calendar format used for expected completion
// times in every maintenance view: day/month/year hour:minute, 24h clock.
const CompletionLayout = "02/01/2006 15:04"

// ErrBadCompletion is returned by ParseCompletion for unparseable input.
var ErrBadCompletion = errors.New("expected_completion must be RFC 3339 or dd/mm/yyyy HH:MM")

// ParseCompletion accepts either an RFC 3339 timestamp or a value in
// CompletionLayout (interpreted as UTC) and returns it in UTC.
func ParseCompletion(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrBadCompletion
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(CompletionLayout, s, time.UTC); err == nil {
		return t, nil
	}
	return time.Time{}, ErrBadCompletion
}

// FormatCompletion renders t in CompletionLayout (UTC).
func FormatCompletion(t time.Time) string {
	return t.UTC().Format(CompletionLayout)
}

// EquipmentView is the public representation of an Equipment row.
type EquipmentView struct {
	Name       string    `json:"name"        example:"Press-01"`
	Model      string    `json:"model"       example:"X200"`
	Sector     string    `json:"sector"      example:"A1"`
	Impact     Impact    `json:"impact"      example:"High"`
	InsertedAt time.Time `json:"inserted_at"`
}

// TechnicianView is the public representation of a Technician row.
type TechnicianView struct {
	Name               string `json:"name"                example:"Ana"`
	RegistrationNumber string `json:"registration_number" example:"T100"`
	Shift              string `json:"shift"               example:"Day"`
}

// MaintenanceView is the public representation of a Maintenance row.
// ExpectedCompletion is always rendered with CompletionLayout, for single
// rows and listings alike.
type MaintenanceView struct {
	ID                     uint   `json:"id"                      example:"1"`
	EquipmentName          string `json:"equipment_name"          example:"Press-01"`
	TechnicianRegistration string `json:"technician_registration" example:"T100"`
	Status                 string `json:"status"                  example:"In Progress"`
	MaintenanceType        string `json:"maintenance_type"        example:"Preventive"`
	Comment                string `json:"comment"                 example:""`
	ExpectedCompletion     string `json:"expected_completion"     example:"24/10/2026 17:30"`
}

// PresentEquipment maps an Equipment row to its view.
func PresentEquipment(e Equipment) EquipmentView {
	return EquipmentView{
		Name:       e.Name,
		Model:      e.Model,
		Sector:     e.Sector,
		Impact:     e.Impact,
		InsertedAt: e.InsertedAt,
	}
}

// PresentEquipmentList maps rows to views; the result is never nil.
func PresentEquipmentList(in []Equipment) []EquipmentView {
	out := make([]EquipmentView, 0, len(in))
	for _, e := range in {
		out = append(out, PresentEquipment(e))
	}
	return out
}

// PresentTechnician maps a Technician row to its view.
func PresentTechnician(t Technician) TechnicianView {
	return TechnicianView{
		Name:               t.Name,
		RegistrationNumber: t.RegistrationNumber,
		Shift:              t.Shift,
	}
}

// PresentTechnicianList maps rows to views; the result is never nil.
func PresentTechnicianList(in []Technician) []TechnicianView {
	out := make([]TechnicianView, 0, len(in))
	for _, t := range in {
		out = append(out, PresentTechnician(t))
	}
	return out
}

// PresentMaintenance maps a Maintenance row to its view.
func PresentMaintenance(m Maintenance) MaintenanceView {
	return MaintenanceView{
		ID:                     m.ID,
		EquipmentName:          m.EquipmentName,
		TechnicianRegistration: m.TechnicianRegistration,
		Status:                 m.Status,
		MaintenanceType:        m.MaintenanceType,
		Comment:                m.Comment,
		ExpectedCompletion:     FormatCompletion(m.ExpectedCompletion),
	}
}

// PresentMaintenanceList maps rows to views; the result is never nil.
func PresentMaintenanceList(in []Maintenance) []MaintenanceView {
	out := make([]MaintenanceView, 0, len(in))
	for _, m := range in {
		out = append(out, PresentMaintenance(m))
	}
	return out
}
