package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"swasthyasetu-backend/internal/config"
	"swasthyasetu-backend/internal/models"
	"swasthyasetu-backend/pkg/utils"
)

// CreateAppointment books a new appointment for the logged-in patient.
// The target hospital is resolved (or lazily onboarded) from whatever the
// client sent: a real id, a known name, or a map-provider result.
func CreateAppointment(c *gin.Context) {
	patientID, _ := c.Get("userID")

	var input models.CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid appointment input", err.Error())
		return
	}

	date, err := ParseAppointmentDate(input.Date, time.Now())
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}

	hospital := ResolveHospital(config.DB, input.HospitalID, input.HospitalName, input.HospitalAddress)

	appt := models.Appointment{
		PatientID: patientID.(uint64),
		Doctor:    input.Doctor,
		Specialty: input.Specialty,
		Date:      date,
		Time:      input.Time,
		Type:      input.Type,
		Status:    models.StatusPending,
		Reason:    input.Reason,
	}

	if hospital != nil {
		appt.HospitalID = hospital.ID
		appt.HospitalName = hospital.Name
		appt.HospitalAddress = hospital.Address
	} else {
		// Could not resolve or onboard; keep the raw name so the booking
		// is still displayable.
		appt.HospitalName = input.HospitalName
		if appt.HospitalName == "" {
			appt.HospitalName = "Unknown Hospital"
		}
		appt.HospitalAddress = input.HospitalAddress
	}

	if err := config.DB.Create(&appt).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to book appointment", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Appointment booked", appt)
}

// GetMyAppointments lists the patient's own appointments, newest date first.
func GetMyAppointments(c *gin.Context) {
	patientID, _ := c.Get("userID")

	var appts []models.Appointment
	config.DB.
		Preload("Hospital").
		Where("patient_id = ?", patientID).
		Order("date desc").
		Find(&appts)

	utils.APIResponse(c, http.StatusOK, true, "Appointments fetched", appts)
}

// GetHospitalAppointments lists appointments at the admin's hospital, with
// an optional ?status= filter.
func GetHospitalAppointments(c *gin.Context) {
	admin, ok := currentHospitalAdmin(c)
	if !ok {
		return
	}

	query := config.DB.
		Preload("Patient").
		Where("hospital_id = ?", *admin.HospitalID).
		Order("date desc, created_at desc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var appts []models.Appointment
	query.Find(&appts)

	utils.APIResponse(c, http.StatusOK, true, "Hospital appointments fetched", appts)
}

// UpdateAppointment lets a hospital admin change status, notes, transfer
// state or cancellation reason. Confirmation and cancellation stamps follow
// the rules in ApplyStatusUpdate.
func UpdateAppointment(c *gin.Context) {
	admin, ok := currentHospitalAdmin(c)
	if !ok {
		return
	}

	var appt models.Appointment
	if err := config.DB.First(&appt, c.Param("id")).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Appointment not found", nil)
		return
	}

	if appt.HospitalID != *admin.HospitalID {
		utils.APIResponse(c, http.StatusForbidden, false, "Appointment belongs to another hospital", nil)
		return
	}

	var input models.UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	statusChanged := input.Status != "" && models.AppointmentStatus(input.Status) != appt.Status

	ApplyStatusUpdate(&appt, input, admin.ID, time.Now())

	if err := config.DB.Save(&appt).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to update appointment", nil)
		return
	}

	if statusChanged {
		notifyPatientStatusChange(&appt)
	}

	config.DB.Preload("Patient").Preload("Hospital").First(&appt, appt.ID)

	utils.APIResponse(c, http.StatusOK, true, "Appointment updated", appt)
}

// CancelAppointment is the patient's quick-cancel path: owner or any admin,
// no reason captured. Reasoned cancellation goes through UpdateAppointment.
func CancelAppointment(c *gin.Context) {
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")

	var appt models.Appointment
	if err := config.DB.First(&appt, c.Param("id")).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Appointment not found", nil)
		return
	}

	if appt.PatientID != userID.(uint64) && role.(string) != "admin" {
		utils.APIResponse(c, http.StatusForbidden, false, "Not allowed to cancel this appointment", nil)
		return
	}

	appt.Status = models.StatusCancelled
	if err := config.DB.Save(&appt).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to cancel appointment", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Appointment cancelled", appt)
}

// UploadDocument attaches a file or an external URL to an appointment.
// Accepts a multipart form (field "document") or a JSON body with "url".
func UploadDocument(c *gin.Context) {
	admin, ok := currentHospitalAdmin(c)
	if !ok {
		return
	}

	var appt models.Appointment
	if err := config.DB.First(&appt, c.Param("id")).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Appointment not found", nil)
		return
	}

	if appt.HospitalID != *admin.HospitalID {
		utils.APIResponse(c, http.StatusForbidden, false, "Appointment belongs to another hospital", nil)
		return
	}

	var docType, docURL, docNotes string

	if file, err := c.FormFile("document"); err == nil {
		filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename))
		if err := c.SaveUploadedFile(file, filepath.Join("uploads", filename)); err != nil {
			utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to store file", nil)
			return
		}
		docURL = "/uploads/" + filename
		docType = c.PostForm("type")
		docNotes = c.PostForm("notes")
	} else {
		var body struct {
			Type  string `json:"type"`
			URL   string `json:"url"`
			Notes string `json:"notes"`
		}
		if err := c.ShouldBindJSON(&body); err == nil {
			docType, docURL, docNotes = body.Type, body.URL, body.Notes
		}
	}

	if docURL == "" {
		utils.APIResponse(c, http.StatusBadRequest, false, "A file or a document URL is required", nil)
		return
	}
	if docType == "" {
		docType = "other"
	}

	docs, err := AppendDocument(appt.Documents, models.AppointmentDocument{
		Type:       docType,
		URL:        docURL,
		Notes:      docNotes,
		UploadedBy: admin.ID,
		UploadedAt: time.Now(),
	})
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to attach document", nil)
		return
	}

	appt.Documents = docs
	if err := config.DB.Save(&appt).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to attach document", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Document attached", appt)
}

// DeleteDocument removes the attachment at the given index.
func DeleteDocument(c *gin.Context) {
	admin, ok := currentHospitalAdmin(c)
	if !ok {
		return
	}

	var appt models.Appointment
	if err := config.DB.First(&appt, c.Param("id")).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Appointment not found", nil)
		return
	}

	if appt.HospitalID != *admin.HospitalID {
		utils.APIResponse(c, http.StatusForbidden, false, "Appointment belongs to another hospital", nil)
		return
	}

	index, err := strconv.Atoi(c.Param("docIndex"))
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid document index", nil)
		return
	}

	docs, err := RemoveDocument(appt.Documents, index)
	if err != nil {
		if errors.Is(err, ErrDocumentIndex) {
			utils.APIResponse(c, http.StatusNotFound, false, "Document not found", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to remove document", nil)
		return
	}

	appt.Documents = docs
	if err := config.DB.Save(&appt).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to remove document", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Document removed", appt)
}

// HandleTransfer approves or rejects a pending transfer request.
func HandleTransfer(c *gin.Context) {
	admin, ok := currentHospitalAdmin(c)
	if !ok {
		return
	}

	var appt models.Appointment
	if err := config.DB.First(&appt, c.Param("id")).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Appointment not found", nil)
		return
	}

	if appt.HospitalID != *admin.HospitalID {
		utils.APIResponse(c, http.StatusForbidden, false, "Appointment belongs to another hospital", nil)
		return
	}

	var input models.TransferActionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	if input.Action == "approve" {
		appt.TransferStatus = "approved"
		if appt.AdminNotes != "" {
			appt.AdminNotes += "\n"
		}
		appt.AdminNotes += "[Transfer approved]"
	} else {
		appt.TransferStatus = "rejected"
	}

	if err := config.DB.Save(&appt).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to update transfer", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Transfer "+input.Action+"d", appt)
}

// currentHospitalAdmin loads the logged-in admin and checks they belong to
// a hospital. Writes the error response itself when the check fails.
func currentHospitalAdmin(c *gin.Context) (*models.User, bool) {
	userID, _ := c.Get("userID")

	var admin models.User
	if err := config.DB.First(&admin, userID).Error; err != nil {
		utils.APIResponse(c, http.StatusForbidden, false, "Admin account not found", nil)
		return nil, false
	}

	if admin.HospitalID == nil {
		utils.APIResponse(c, http.StatusForbidden, false, "Admin is not linked to a hospital", nil)
		return nil, false
	}

	return &admin, true
}

func notifyPatientStatusChange(appt *models.Appointment) {
	var patient models.User
	if err := config.DB.First(&patient, appt.PatientID).Error; err != nil {
		return
	}

	utils.SendNotification(patient.FCMToken,
		"Appointment "+string(appt.Status),
		fmt.Sprintf("Your appointment at %s on %s is now %s.",
			appt.HospitalName, appt.Date.Format("02 Jan 2006"), appt.Status),
		map[string]string{"appointment_id": strconv.FormatUint(appt.ID, 10)},
	)
}
