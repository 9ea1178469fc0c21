package handler

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"zoning/internal/delivery/http/response"
	"zoning/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// TransferHandler holds dependencies for workbook import and export.
type TransferHandler struct {
	uc     usecase.TransferUsecase
	logger *slog.Logger
}

// NewTransferHandler is the constructor for TransferHandler, injected by Fx.
func NewTransferHandler(uc usecase.TransferUsecase, logger *slog.Logger) *TransferHandler {
	return &TransferHandler{
		uc:     uc,
		logger: logger,
	}
}

// Import ingests an uploaded xlsx workbook. The upload must arrive as a
// multipart form under the "file" field. Either every data row is accepted
// or none are.
func (h *TransferHandler) Import(c echo.Context) error {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing workbook upload under field 'file'")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded workbook")
	}
	defer src.Close()

	output, err := h.uc.Import(c.Request().Context(), ownerID, src)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Workbook imported",
		slog.String("ownerID", ownerID.String()),
		slog.Int("imported", output.Imported),
	)

	return response.Success(c, http.StatusCreated, map[string]int{"imported": output.Imported}, "Applicants imported successfully")
}

// Export streams the calling officer's dossiers as an xlsx workbook.
func (h *TransferHandler) Export(c echo.Context) error {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	// Buffer the workbook so a mid-write failure never truncates a
	// response that already carries success headers.
	var buf bytes.Buffer
	output, err := h.uc.Export(c.Request().Context(), ownerID, &buf)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Workbook exported",
		slog.String("ownerID", ownerID.String()),
		slog.Int("records", output.Records),
	)

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", output.Filename))

	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
