package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"swasthyasetu-backend/internal/models"
)

var ErrDocumentIndex = errors.New("document index out of range")

// ParseAppointmentDate accepts YYYY-MM-DD or a full RFC3339 timestamp and
// rejects dates before today.
func ParseAppointmentDate(raw string, now time.Time) (time.Time, error) {
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		date, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q, expected ISO8601", raw)
		}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return time.Time{}, errors.New("appointment date cannot be in the past")
	}
	return date, nil
}

// ApplyStatusUpdate mutates an appointment per an admin update request.
// Confirmation details are stamped only when the status moves into
// confirmed from a different state. Cancellation details are stamped on
// every write of cancelled, not only the first.
func ApplyStatusUpdate(appt *models.Appointment, input models.UpdateAppointmentInput, actorID uint64, now time.Time) {
	if input.Status != "" {
		newStatus := models.AppointmentStatus(input.Status)

		if newStatus == models.StatusConfirmed && appt.Status != models.StatusConfirmed {
			id := actorID
			at := now
			appt.ConfirmedByID = &id
			appt.ConfirmedAt = &at
		}

		if newStatus == models.StatusCancelled {
			reason := input.CancelReason
			if reason == "" {
				reason = "No reason provided"
			}
			id := actorID
			at := now
			appt.CancelReason = reason
			appt.CancelledByID = &id
			appt.CancelledAt = &at
		}

		appt.Status = newStatus
	}

	if input.Notes != "" {
		appt.AdminNotes = input.Notes
	}
	if input.TransferStatus != "" {
		appt.TransferStatus = input.TransferStatus
	}
}

// AppendDocument adds an entry to the JSON document list.
func AppendDocument(raw datatypes.JSON, doc models.AppointmentDocument) (datatypes.JSON, error) {
	docs, err := decodeDocuments(raw)
	if err != nil {
		return nil, err
	}
	docs = append(docs, doc)
	out, err := json.Marshal(docs)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(out), nil
}

// RemoveDocument deletes the entry at index. Returns ErrDocumentIndex when
// the index does not exist.
func RemoveDocument(raw datatypes.JSON, index int) (datatypes.JSON, error) {
	docs, err := decodeDocuments(raw)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(docs) {
		return nil, ErrDocumentIndex
	}
	docs = append(docs[:index], docs[index+1:]...)
	out, err := json.Marshal(docs)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(out), nil
}

func decodeDocuments(raw datatypes.JSON) ([]models.AppointmentDocument, error) {
	if len(raw) == 0 {
		return []models.AppointmentDocument{}, nil
	}
	var docs []models.AppointmentDocument
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
