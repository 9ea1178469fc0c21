package impl

import (
	"context"
	"io"
	"log/slog"
	"strconv"

	domainerrors "zoning/internal/domain/errors"
	"zoning/internal/domain/intake"
	"zoning/internal/infra/spreadsheet"
	"zoning/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const exportSheetName = "Applicants"

// transferService implements the TransferUsecase interface on top of the
// applicant usecase: imports go through CreateBulk so batch appends stay
// all-or-nothing, and exports go through ListForOwner so the expiry sweep
// runs before anything is written out.
type transferService struct {
	applicants usecase.ApplicantUsecase
	logger     *slog.Logger
}

// TransferServiceParams holds dependencies for TransferService, injected by Fx.
type TransferServiceParams struct {
	fx.In

	Applicants usecase.ApplicantUsecase
	Logger     *slog.Logger
}

// NewTransferService is the constructor for transferService.
func NewTransferService(params TransferServiceParams) usecase.TransferUsecase {
	return &transferService{
		applicants: params.Applicants,
		logger:     params.Logger,
	}
}

// Import parses the uploaded workbook, maps and validates its rows, and
// persists the batch. A structural problem and a content problem are
// reported as different errors, and neither persists anything.
func (srv *transferService) Import(ctx context.Context, ownerID uuid.UUID, upload io.Reader) (*usecase.ImportOutput, error) {
	rows, err := spreadsheet.Parse(upload)
	if err != nil {
		srv.logger.Warn("Import upload unreadable", slog.Any("error", err))

		return nil, domainerrors.ErrWorkbookMalformed.WrapMessage(err.Error())
	}

	candidates, err := intake.ValidateAndMap(rows)
	if err != nil {
		var validationErr *intake.ValidationError
		if errors.As(err, &validationErr) {
			srv.logger.Warn("Import batch rejected", slog.Int("invalidRows", validationErr.InvalidRows))

			return nil, domainerrors.ErrImportRejected.
				WithDetails(strconv.Itoa(validationErr.InvalidRows) + " invalid row(s)")
		}

		return nil, errors.Wrap(err, "failed to validate import batch")
	}

	if err := srv.applicants.CreateBulk(ctx, ownerID, candidates); err != nil {
		return nil, errors.Wrap(err, "failed to persist import batch")
	}

	srv.logger.Info("Import completed", slog.Int("imported", len(candidates)), slog.Any("ownerID", ownerID))

	return &usecase.ImportOutput{Imported: len(candidates)}, nil
}

// Export writes the owner's dossiers as a single-sheet workbook in the
// shape the importer accepts back (Status and Date Registered columns are
// ignored on re-import).
func (srv *transferService) Export(ctx context.Context, ownerID uuid.UUID, w io.Writer) (*usecase.ExportOutput, error) {
	owned, err := srv.applicants.ListForOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dossiers for export")
	}

	if err := spreadsheet.Write(w, exportSheetName, intake.Header(), intake.ToTable(owned)); err != nil {
		return nil, errors.Wrap(err, "failed to write export workbook")
	}

	return &usecase.ExportOutput{
		Filename: intake.ExportFilename(timeNow()),
		Records:  len(owned),
	}, nil
}
