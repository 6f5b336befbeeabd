package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/simonindia/hr-portal/internal/api/metrics"
	"github.com/simonindia/hr-portal/internal/core/ports"
)

// ReferralHandler handles referral submission, listing and CSV export.
type ReferralHandler struct {
	service ports.ReferralService
}

func NewReferralHandler(service ports.ReferralService) *ReferralHandler {
	return &ReferralHandler{service: service}
}

// referralRequest mirrors the submission form. No fields carry validation
// tags: the form is a trusted internal page and absent fields are stored as
// empty strings.
type referralRequest struct {
	EmployeeName    string `json:"employeeName"`
	EmployeeID      string `json:"employeeId"`
	CandidateName   string `json:"candidateName"`
	CandidateEmail  string `json:"candidateEmail"`
	CandidateMobile string `json:"candidateMobile"`
	Position        string `json:"position"`
	Department      string `json:"department"`
	Experience      string `json:"experience"`
	CurrentCompany  string `json:"currentCompany"`
	CurrentLocation string `json:"currentLocation"`
	NoticePeriod    string `json:"noticePeriod"`
	CVLink          string `json:"cvLink"`
}

type listReferralsResponse struct {
	Success   bool               `json:"success"`
	Referrals []referralResponse `json:"referrals"`
}

// List handles GET /api/referrals — authenticated, newest first.
//
// @Summary      List referrals
// @Tags         referrals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listReferralsResponse
// @Failure      401  {object}  errorEnvelope
// @Failure      500  {object}  errorEnvelope
// @Router       /api/referrals [get]
func (h *ReferralHandler) List(c echo.Context) error {
	referrals, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]referralResponse, 0, len(referrals))
	for _, r := range referrals {
		out = append(out, toReferralResponse(r))
	}
	return c.JSON(http.StatusOK, listReferralsResponse{Success: true, Referrals: out})
}

// Create handles POST /api/referrals — public submission endpoint.
//
// @Summary      Submit a referral
// @Tags         referrals
// @Accept       json
// @Produce      json
// @Param        body  body      referralRequest  true  "Referral fields"
// @Success      201   {object}  successEnvelope
// @Failure      400   {object}  errorEnvelope
// @Failure      500   {object}  errorEnvelope
// @Router       /api/referrals [post]
func (h *ReferralHandler) Create(c echo.Context) error {
	var req referralRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	_, err := h.service.Create(c.Request().Context(), ports.CreateReferralInput{
		EmployeeName:    req.EmployeeName,
		EmployeeID:      req.EmployeeID,
		CandidateName:   req.CandidateName,
		CandidateEmail:  req.CandidateEmail,
		CandidateMobile: req.CandidateMobile,
		Position:        req.Position,
		Department:      req.Department,
		Experience:      req.Experience,
		CurrentCompany:  req.CurrentCompany,
		CurrentLocation: req.CurrentLocation,
		NoticePeriod:    req.NoticePeriod,
		CVLink:          req.CVLink,
	})
	if err != nil {
		return err
	}

	metrics.ReferralsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, successEnvelope{Success: true, Message: "Referral submitted successfully"})
}

// Export handles GET /api/referrals/export-excel — CSV attachment download.
// The path keeps the historical "export-excel" name the frontend calls.
//
// @Summary      Export referrals as CSV
// @Tags         referrals
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {file}    file
// @Failure      401  {object}  errorEnvelope
// @Failure      500  {object}  errorEnvelope
// @Router       /api/referrals/export-excel [get]
func (h *ReferralHandler) Export(c echo.Context) error {
	data, filename, err := h.service.ExportCSV(c.Request().Context())
	if err != nil {
		return err
	}

	metrics.ReferralExportsTotal.Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/csv", data)
}
