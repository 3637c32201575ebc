package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/workplanner/workplanner-backend-go/internal/domain/timeadmin"
	"github.com/workplanner/workplanner-backend-go/internal/handler/http/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type TimeAdministrationHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type TimeAdministrationHandlerImpl struct {
	timeAdminService timeadmin.Service
}

func NewTimeAdministrationHandler(timeAdminService timeadmin.Service) TimeAdministrationHandler {
	return &TimeAdministrationHandlerImpl{timeAdminService: timeAdminService}
}

// parseTimeAdministrationRequest leaves unparsable year/month at zero so validation rejects them
func parseTimeAdministrationRequest(r *http.Request) (timeadmin.TimeAdministrationRequest, error) {
	managerID, err := currentUserID(r)
	if err != nil {
		return timeadmin.TimeAdministrationRequest{}, err
	}

	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))

	return timeadmin.TimeAdministrationRequest{
		ManagerID: managerID,
		Year:      year,
		Month:     month,
	}, nil
}

// Get implements TimeAdministrationHandler.
func (h *TimeAdministrationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	req, err := parseTimeAdministrationRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.timeAdminService.GenerateTimeAdministrationReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report.Rows)
}

// Export implements TimeAdministrationHandler.
func (h *TimeAdministrationHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	req, err := parseTimeAdministrationRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	data, err := h.timeAdminService.ExportTimeAdministrationReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("time-administration-%04d-%02d.xlsx", req.Year, req.Month)
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.ErrorContext(r.Context(), "failed to write time administration export", "error", err)
	}
}
