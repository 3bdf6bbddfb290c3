package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"punchclock/internal/delivery/api/middleware"
	"punchclock/internal/delivery/api/response"
	"punchclock/internal/delivery/api/validator"
	domainerrors "punchclock/internal/domain/errors"
	"punchclock/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const exportFilename = "punchclock-entries.csv"

// EntryHandlerParams holds dependencies for EntryHandler, injected by Fx.
type EntryHandlerParams struct {
	fx.In

	ClockUC  usecase.ClockUsecase
	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// EntryHandler serves the clock and report endpoints of the current user.
type EntryHandler struct {
	clockUC  usecase.ClockUsecase
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewEntryHandler is the constructor for EntryHandler.
func NewEntryHandler(params EntryHandlerParams) *EntryHandler {
	return &EntryHandler{
		clockUC:  params.ClockUC,
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// ClockInRequest represents the request body for clocking in.
type ClockInRequest struct {
	Timezone string `json:"timezone" validate:"required,max=64"`
}

// ClockOutRequest represents the request body for clocking out.
type ClockOutRequest struct {
	Auto bool `json:"auto"`
}

// ClockIn opens a work session.
func (h *EntryHandler) ClockIn(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req ClockInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid clock-in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid clock-in input", validator.FieldErrors(err))
	}

	output, err := h.clockUC.ClockIn(c.Request().Context(), &usecase.ClockInInput{
		UserID:   user.ID,
		Timezone: req.Timezone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Clocked in")
}

// ClockOut closes the open work session. The body is optional.
func (h *EntryHandler) ClockOut(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req ClockOutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid clock-out input")
	}

	output, err := h.clockUC.ClockOut(c.Request().Context(), &usecase.ClockOutInput{
		UserID:    user.ID,
		Automatic: req.Auto,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Clocked out")
}

// Status returns whether the user is working and their total for the current year.
func (h *EntryHandler) Status(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	output, err := h.clockUC.Status(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Heatmap returns per-day totals for ?year=, defaulting to the current UTC year.
func (h *EntryHandler) Heatmap(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var year *int
	if raw := c.QueryParam("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, domainerrors.ErrInvalidInput.ErrorCode(), "year must be a number")
		}
		year = &parsed
	}

	output, err := h.reportUC.Heatmap(c.Request().Context(), user.ID, year)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Export downloads all closed entries as CSV.
func (h *EntryHandler) Export(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	// Buffered so a failed export still gets a JSON error response.
	var buf bytes.Buffer
	if err := h.reportUC.Export(c.Request().Context(), user.ID, &buf); err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+exportFilename+`"`)

	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
