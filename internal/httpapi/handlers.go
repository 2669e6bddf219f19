package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/alexanderramin/meridian/internal/contract"
	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/gin-gonic/gin"
)

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, errorEnvelope{Error: apiError{Message: message, Code: code}})
}

// respondUseCaseError maps typed use-case errors to HTTP statuses.
// Anything else is an internal error and its text is not exposed.
func (h *Handler) respondUseCaseError(c *gin.Context, err error) {
	var planErr *contract.PlanError
	if errors.As(err, &planErr) {
		status := http.StatusInternalServerError
		switch planErr.Code {
		case contract.PlanErrProfileNotFound:
			status = http.StatusNotFound
		case contract.PlanErrInvalidProfile:
			status = http.StatusUnprocessableEntity
		}
		respondError(c, status, string(planErr.Code), planErr.Message)
		return
	}
	h.cfg.Logger.Error("http_internal_error", "path", c.FullPath(), "error", err.Error())
	respondError(c, http.StatusInternalServerError, string(contract.PlanErrInternal), "internal error")
}

func (h *Handler) profileID(c *gin.Context) string {
	return c.DefaultQuery("profile", h.cfg.ProfileID)
}

// queryDate parses ?date=YYYY-MM-DD. ok is false after an error response.
func queryDate(c *gin.Context) (date *time.Time, ok bool) {
	raw := c.Query("date")
	if raw == "" {
		return nil, true
	}
	parsed, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_DATE", "invalid date, expected YYYY-MM-DD")
		return nil, false
	}
	return &parsed, true
}

// queryWindow parses ?window=N, falling back to the configured default.
func (h *Handler) queryWindow(c *gin.Context) (int, bool) {
	raw := c.Query("window")
	if raw == "" {
		return h.cfg.WindowDays, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 || n > 90 {
		respondError(c, http.StatusBadRequest, "INVALID_WINDOW", "window must be between 1 and 90")
		return 0, false
	}
	return n, true
}

func (h *Handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// getPlan serves the day's plan.
// GET /api/plan?date=YYYY-MM-DD&mode=sick&profile=ID. Unknown modes resolve
// as normal with a warning in the plan.
func (h *Handler) getPlan(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	window, ok := h.queryWindow(c)
	if !ok {
		return
	}

	req := contract.NewPlanRequest(h.profileID(c))
	req.Date = date
	req.WindowDays = window
	if mode := c.Query("mode"); mode != "" {
		req.Mode = domain.UserMode(mode)
	}

	resp, err := h.plans.Generate(c.Request.Context(), req)
	if err != nil {
		h.respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract.FromPlan(resp.Plan))
}

// getAdaptation serves the pattern report for the window ending on date.
// GET /api/adaptation?window=7&date=YYYY-MM-DD&profile=ID.
func (h *Handler) getAdaptation(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	window, ok := h.queryWindow(c)
	if !ok {
		return
	}

	req := contract.NewAdaptationRequest(h.profileID(c))
	req.Date = date
	req.WindowDays = window

	resp, err := h.adaptation.Report(c.Request.Context(), req)
	if err != nil {
		h.respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract.FromReport(resp.Report))
}

// postCalibrate runs a recalibration.
// POST /api/calibrate. Optional body: { "profile": "ID", "samples": 8 }.
func (h *Handler) postCalibrate(c *gin.Context) {
	var body struct {
		Profile string `json:"profile"`
		Samples int    `json:"samples"`
	}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
			return
		}
	}
	if body.Samples < 0 || body.Samples == 1 {
		respondError(c, http.StatusBadRequest, "INVALID_SAMPLES", "samples must be at least 2")
		return
	}

	req := contract.NewCalibrateRequest(domain.CoalesceStr(body.Profile, h.profileID(c)))
	if body.Samples > 0 {
		req.Samples = body.Samples
	}

	resp, err := h.calibration.Recalibrate(c.Request.Context(), req)
	if err != nil {
		h.respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract.FromCalibration(resp))
}
