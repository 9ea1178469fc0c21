package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"zoning/internal/delivery/http/response"
	"zoning/internal/domain/entity"
	"zoning/internal/domain/service"
	"zoning/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ApplicantHandler holds dependencies for dossier handlers.
type ApplicantHandler struct {
	uc       usecase.ApplicantUsecase
	advisory service.AdvisoryService
	logger   *slog.Logger
}

// NewApplicantHandler is the constructor for ApplicantHandler, injected by Fx.
func NewApplicantHandler(uc usecase.ApplicantUsecase, advisory service.AdvisoryService, logger *slog.Logger) *ApplicantHandler {
	return &ApplicantHandler{
		uc:       uc,
		advisory: advisory,
		logger:   logger,
	}
}

// createApplicantRequest is the wire shape for registering a dossier.
// Area positivity is enforced here, at the form boundary, as the usecase
// expects.
type createApplicantRequest struct {
	Name         string  `json:"name" validate:"required"`
	Sex          string  `json:"sex" validate:"required,oneof=Male Female Other"`
	Address      string  `json:"address" validate:"required"`
	Zone         string  `json:"zone" validate:"required"`
	ZoneLocation string  `json:"zoneLocation" validate:"required"`
	Area         float64 `json:"area" validate:"required,gt=0"`
}

// updateStatusRequest is the wire shape for a status edit.
type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// updateAdministrativeRequest carries the optional administrative fields.
type updateAdministrativeRequest struct {
	ReleaseDate   *time.Time `json:"releaseDate"`
	PaymentDate   *time.Time `json:"paymentDate"`
	PaymentAmount *float64   `json:"paymentAmount" validate:"omitempty,gte=0"`
}

// adviceRequest is the wire shape for a planning-advice query.
type adviceRequest struct {
	Zone     string  `json:"zone" validate:"required"`
	Area     float64 `json:"area" validate:"required,gt=0"`
	Location string  `json:"location" validate:"required"`
}

// List returns the calling officer's dossiers, expiry applied.
func (h *ApplicantHandler) List(c echo.Context) error {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	applicants, err := h.uc.ListForOwner(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toApplicantResponses(applicants), "Applicants retrieved successfully")
}

// Create registers a single dossier for the calling officer.
func (h *ApplicantHandler) Create(c echo.Context) error {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createApplicantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid applicant input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	zone := entity.Zone(req.Zone)
	if !zone.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown zone category; valid zones: "+zoneList())
	}

	applicant, err := h.uc.Create(c.Request().Context(), ownerID, &usecase.CreateApplicantInput{
		Name:         req.Name,
		Sex:          entity.Sex(req.Sex),
		Address:      req.Address,
		Zone:         zone,
		ZoneLocation: req.ZoneLocation,
		Area:         req.Area,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toApplicantResponse(applicant), "Applicant registered successfully")
}

// UpdateStatus replaces the status of one dossier.
func (h *ApplicantHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid applicant ID")
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	status := entity.ApprovalStatus(req.Status)
	if !status.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown approval status")
	}

	if err := h.uc.UpdateStatus(c.Request().Context(), id, status); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Status updated successfully")
}

// UpdateAdministrative merges the provided administrative fields into one
// dossier.
func (h *ApplicantHandler) UpdateAdministrative(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid applicant ID")
	}

	var req updateAdministrativeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid administrative input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.UpdateAdministrativeInput{
		ReleaseDate:   req.ReleaseDate,
		PaymentDate:   req.PaymentDate,
		PaymentAmount: req.PaymentAmount,
	}

	if err := h.uc.UpdateAdministrative(c.Request().Context(), id, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Administrative fields updated successfully")
}

// Delete removes one dossier permanently.
func (h *ApplicantHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid applicant ID")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Applicant deleted successfully")
}

// Advice returns best-effort planning advice for a proposed project. The
// advisory backend can fail freely; the client always gets a string back.
func (h *ApplicantHandler) Advice(c echo.Context) error {
	var req adviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid advice input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	advice := h.advisory.Advise(c.Request().Context(), entity.ParseZone(req.Zone), req.Area, req.Location)

	return response.Success(c, http.StatusOK, map[string]string{"advice": advice}, "Advice generated")
}

// ownerFromContext pulls the authenticated officer's ID set by the auth
// middleware.
func ownerFromContext(c echo.Context) (uuid.UUID, bool) {
	ownerID, ok := c.Get("userID").(uuid.UUID)

	return ownerID, ok
}

// zoneList renders the closed zone set for rejection messages.
func zoneList() string {
	zones := entity.Zones()
	names := make([]string, 0, len(zones))
	for _, zone := range zones {
		names = append(names, string(zone))
	}

	return strings.Join(names, ", ")
}
