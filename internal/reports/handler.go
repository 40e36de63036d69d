package reports

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/MGhiremath0281/Apex-Money/internal/auth"
	"github.com/MGhiremath0281/Apex-Money/internal/transport"
	"github.com/MGhiremath0281/Apex-Money/pkg/logger"
)

type ServiceAPI interface {
	MonthlySummary(ctx context.Context, userID int64, year, month int) (*MonthlySummary, error)
	NetWorth(ctx context.Context, userID int64) (*NetWorthReport, error)
	Dashboard(ctx context.Context, userID int64) (*DashboardSummary, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.L()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	summary, err := h.Service.Dashboard(r.Context(), user.ID)
	if err != nil {
		h.Logger.Error("Dashboard: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}

// GetMonthlySummary serves GET /reports/summary?year=&month=. Missing
// parameters default to the current month; out-of-range values fall back
// to the current month with a notice rather than failing.
func (h *Handler) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	now := time.Now()
	year := queryInt(r, "year", now.Year())
	month := queryInt(r, "month", int(now.Month()))

	summary, err := h.Service.MonthlySummary(r.Context(), user.ID, year, month)
	if err != nil {
		h.Logger.Error("GetMonthlySummary: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) GetNetWorth(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	report, err := h.Service.NetWorth(r.Context(), user.ID)
	if err != nil {
		h.Logger.Error("GetNetWorth: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, report)
}

// queryInt returns the parsed query parameter, the fallback when absent,
// and 0 when present but malformed so the service's invalid-period
// fallback kicks in.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}
