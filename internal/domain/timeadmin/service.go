package timeadmin

import "context"

// Service defines time administration reporting. Callers authorize the manager beforehand.
type Service interface {
	GenerateTimeAdministrationReport(ctx context.Context, req TimeAdministrationRequest) (Report, error)

	// ExportTimeAdministrationReport renders the same report as an XLSX workbook
	ExportTimeAdministrationReport(ctx context.Context, req TimeAdministrationRequest) ([]byte, error)
}
