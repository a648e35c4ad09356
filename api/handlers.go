/*
handlers.go - HTTP API handlers for the leave scheduling engine

PURPOSE:
  Exposes the scheduling engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.
  The engine never formats display strings; handlers only translate
  structured results.

ENDPOINTS:
  Roster:
    GET    /api/employees                    List the roster
    GET    /api/employees/{id}               Get one employee
    PUT    /api/employees/{id}               Edit name and proxy
    GET    /api/employees/{id}/summary       Leave-hours totals
    GET    /api/employees/{id}/covering      Proxy-assignment view

  Leaves:
    POST   /api/leaves                       Submit a leave request
    GET    /api/leaves/pending               Manager approval queue
    POST   /api/leaves/{id}/approve          Approve
    POST   /api/leaves/{id}/reject           Reject with reason

  Calendar:
    GET    /api/calendar?date=YYYY-MM-DD     Per-slot approved occupancy

ERROR HANDLING:
  Engine errors map onto HTTP status:
  - ValidationError  -> 400
  - NotFoundError    -> 404
  - conflict awaiting confirmation -> 409 (no record created)
  - PersistenceError -> 500 ("could not save"; the client must not
    assume the action took effect)

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/warp/leave-scheduler/schedule"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Roster   *schedule.Roster
	Index    *schedule.Index
	Manager  *schedule.Manager
	Logger   *zap.Logger
	validate *validator.Validate
}

// NewHandler wires the engine components over the given store.
func NewHandler(store schedule.Store, logger *zap.Logger) *Handler {
	roster := schedule.NewRoster(store)
	index := schedule.NewIndex(store, roster)
	return &Handler{
		Roster:   roster,
		Index:    index,
		Manager:  schedule.NewManager(store, roster, index),
		Logger:   logger,
		validate: validator.New(),
	}
}

// =============================================================================
// ROSTER HANDLERS
// =============================================================================

// ListEmployees returns the full roster.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Roster.List(r.Context())
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetEmployee returns a single roster entry.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := schedule.EmployeeID(chi.URLParam(r, "id"))

	emp, err := h.Roster.Lookup(r.Context(), id)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "employee not found")
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(*emp))
}

// UpdateEmployee edits an employee's name and proxy.
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := schedule.EmployeeID(chi.URLParam(r, "id"))

	var req UpdateEmployeeRequest
	if !h.decode(w, r, &req) {
		return
	}

	emp, err := h.Roster.Update(r.Context(), id, req.Name, schedule.EmployeeID(req.ProxyID))
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(*emp))
}

// GetSummary returns the employee's leave-hours totals.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	id := schedule.EmployeeID(chi.URLParam(r, "id"))

	summary, err := h.Manager.HoursRequested(r.Context(), id)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SummaryDTO{
		EmployeeID:     string(summary.EmployeeID),
		RequestedHours: summary.Requested.Value.String(),
		ApprovedHours:  summary.Approved.Value.String(),
		PendingHours:   summary.Pending.Value.String(),
	})
}

// GetCovering returns the absences the employee is covering as proxy
// during one slot of a date.
func (h *Handler) GetCovering(w http.ResponseWriter, r *http.Request) {
	id := schedule.EmployeeID(chi.URLParam(r, "id"))

	date, ok := h.queryDate(w, r)
	if !ok {
		return
	}
	slot, err := strconv.Atoi(r.URL.Query().Get("slot"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "slot must be an integer slot index")
		return
	}

	records, err := h.Index.ProxyAssignments(r.Context(), id, date, slot)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toLeaveRecordDTOs(records))
}

// =============================================================================
// LEAVE HANDLERS
// =============================================================================

// SubmitLeave submits a leave request. The confirmation gate is driven
// by the request's confirmed flag.
func (h *Handler) SubmitLeave(w http.ResponseWriter, r *http.Request) {
	var req SubmitLeaveRequest
	if !h.decode(w, r, &req) {
		return
	}

	confirm := schedule.ConfirmerFunc(func(context.Context, schedule.Conflict) (bool, error) {
		return req.Confirmed, nil
	})

	result, err := h.Manager.Submit(r.Context(), schedule.SubmitInput{
		EmployeeID: schedule.EmployeeID(req.EmployeeID),
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Reason:     req.Reason,
	}, confirm)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	dto := SubmitResultDTO{
		Outcome:  string(result.Outcome),
		Conflict: toConflictDTO(result.Conflict),
	}
	if result.Record != nil {
		rec := toLeaveRecordDTO(*result.Record)
		dto.Record = &rec
	}

	switch result.Outcome {
	case schedule.OutcomeCancelled:
		// Conflict detected and not yet confirmed: nothing was created.
		writeJSON(w, http.StatusConflict, dto)
	default:
		h.Logger.Info("leave submitted",
			zap.String("record_id", dto.Record.ID),
			zap.String("employee_id", req.EmployeeID),
			zap.String("outcome", dto.Outcome))
		writeJSON(w, http.StatusCreated, dto)
	}
}

// ListPending returns the manager approval queue.
func (h *Handler) ListPending(w http.ResponseWriter, r *http.Request) {
	pending, err := h.Manager.Pending(r.Context())
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toLeaveRecordDTOs(pending))
}

// ApproveLeave approves a record.
func (h *Handler) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	id := schedule.RecordID(chi.URLParam(r, "id"))

	rec, err := h.Manager.Approve(r.Context(), id)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	h.Logger.Info("leave approved", zap.String("record_id", string(id)))
	writeJSON(w, http.StatusOK, toLeaveRecordDTO(*rec))
}

// RejectLeave rejects a record with a mandatory reason.
func (h *Handler) RejectLeave(w http.ResponseWriter, r *http.Request) {
	id := schedule.RecordID(chi.URLParam(r, "id"))

	var req RejectLeaveRequest
	if !h.decode(w, r, &req) {
		return
	}

	rec, err := h.Manager.Reject(r.Context(), id, req.Reason)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	h.Logger.Info("leave rejected", zap.String("record_id", string(id)))
	writeJSON(w, http.StatusOK, toLeaveRecordDTO(*rec))
}

// =============================================================================
// CALENDAR HANDLER
// =============================================================================

// GetCalendar returns the approved occupancy of every slot on a date.
func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	date, ok := h.queryDate(w, r)
	if !ok {
		return
	}

	occupancy, err := h.Index.Calendar(r.Context(), date)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	dtos := make([]SlotDTO, len(occupancy))
	for i, slot := range occupancy {
		dtos[i] = SlotDTO{
			Slot:      slot.Slot,
			StartTime: schedule.BoundaryLabel(slot.Slot),
			EndTime:   schedule.BoundaryLabel(slot.Slot + 1),
			Leaves:    toLeaveRecordDTOs(slot.Leaves),
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			writeError(w, http.StatusBadRequest, "missing or invalid field: "+verrs[0].Field())
			return false
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func (h *Handler) queryDate(w http.ResponseWriter, r *http.Request) (schedule.Date, bool) {
	date, err := schedule.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return "", false
	}
	return date, true
}

// writeEngineError maps engine errors onto HTTP responses.
func (h *Handler) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case schedule.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case schedule.IsNotFound(err):
		writeError(w, http.StatusNotFound, err.Error())
	case schedule.IsPersistence(err):
		// Distinct generic message: the operator must not assume the
		// action took effect.
		h.Logger.Error("persistence failure", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not save changes")
	default:
		h.Logger.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
