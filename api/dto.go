/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Request bodies carry go-playground/validator tags; handlers run them
  through the shared validator before touching the engine, so the engine
  only ever sees structurally complete input. Domain rules (boundary
  catalog membership, proxy conflicts) stay in the engine.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"time"

	"github.com/warp/leave-scheduler/schedule"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// SubmitLeaveRequest is the submission body. Confirmed realizes the
// conflict confirmation gate over HTTP: a first submission with
// Confirmed=false stops at a detected conflict (409 with the conflict
// details), and the client resubmits with Confirmed=true to proceed.
type SubmitLeaveRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Date       string `json:"date" validate:"required"`
	StartTime  string `json:"startTime" validate:"required"`
	EndTime    string `json:"endTime" validate:"required"`
	Reason     string `json:"reason" validate:"required"`
	Confirmed  bool   `json:"confirmed"`
}

// RejectLeaveRequest carries the mandatory rejection reason.
type RejectLeaveRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// UpdateEmployeeRequest edits a roster entry (name and proxy).
type UpdateEmployeeRequest struct {
	Name    string `json:"name" validate:"required"`
	ProxyID string `json:"proxyId"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// EmployeeDTO represents a roster entry in API responses.
type EmployeeDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	ProxyID string `json:"proxyId,omitempty"`
}

// LeaveRecordDTO represents a leave record in API responses. Times are
// HH:MM boundary labels, per the external contract.
type LeaveRecordDTO struct {
	ID                   string `json:"id"`
	EmployeeID           string `json:"employeeId"`
	EmployeeName         string `json:"employeeName"`
	Date                 string `json:"date"`
	StartTime            string `json:"startTime"`
	EndTime              string `json:"endTime"`
	Reason               string `json:"reason"`
	Status               string `json:"status"`
	NeedsSpecialApproval bool   `json:"needsSpecialApproval"`
	RejectReason         string `json:"rejectReason,omitempty"`
	AppliedAt            string `json:"appliedAt"`
}

// ConflictDTO describes a detected proxy conflict.
type ConflictDTO struct {
	ProxyID   string           `json:"proxyId"`
	ProxyName string           `json:"proxyName"`
	Records   []LeaveRecordDTO `json:"records"`
}

// SubmitResultDTO is the post-submission outcome.
type SubmitResultDTO struct {
	Outcome  string          `json:"outcome"`
	Record   *LeaveRecordDTO `json:"record,omitempty"`
	Conflict *ConflictDTO    `json:"conflict,omitempty"`
}

// SlotDTO is one calendar row: a bookable slot and the approved leaves
// occupying it.
type SlotDTO struct {
	Slot      int              `json:"slot"`
	StartTime string           `json:"startTime"`
	EndTime   string           `json:"endTime"`
	Leaves    []LeaveRecordDTO `json:"leaves"`
}

// SummaryDTO totals an employee's leave hours by status.
type SummaryDTO struct {
	EmployeeID     string `json:"employeeId"`
	RequestedHours string `json:"requestedHours"`
	ApprovedHours  string `json:"approvedHours"`
	PendingHours   string `json:"pendingHours"`
}

// =============================================================================
// CONVERTERS
// =============================================================================

func toEmployeeDTO(e schedule.Employee) EmployeeDTO {
	return EmployeeDTO{ID: string(e.ID), Name: e.Name, ProxyID: string(e.ProxyID)}
}

func toLeaveRecordDTO(r schedule.LeaveRecord) LeaveRecordDTO {
	return LeaveRecordDTO{
		ID:                   string(r.ID),
		EmployeeID:           string(r.EmployeeID),
		EmployeeName:         r.EmployeeName,
		Date:                 r.Date.String(),
		StartTime:            schedule.BoundaryLabel(r.Start),
		EndTime:              schedule.BoundaryLabel(r.End),
		Reason:               r.Reason,
		Status:               string(r.Status),
		NeedsSpecialApproval: r.NeedsSpecialApproval,
		RejectReason:         r.RejectReason,
		AppliedAt:            r.AppliedAt.Format(time.RFC3339),
	}
}

func toLeaveRecordDTOs(records []schedule.LeaveRecord) []LeaveRecordDTO {
	dtos := make([]LeaveRecordDTO, len(records))
	for i, r := range records {
		dtos[i] = toLeaveRecordDTO(r)
	}
	return dtos
}

func toConflictDTO(c *schedule.Conflict) *ConflictDTO {
	if c == nil {
		return nil
	}
	return &ConflictDTO{
		ProxyID:   string(c.ProxyID),
		ProxyName: c.ProxyName,
		Records:   toLeaveRecordDTOs(c.Records),
	}
}
