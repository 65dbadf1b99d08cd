package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"swasthyasetu-backend/internal/middleware"
	"swasthyasetu-backend/internal/models"
	"swasthyasetu-backend/pkg/utils"
)

// Booking requests that fail binding are rejected before any lookup runs,
// so these cases exercise the full route without a database.
func postBooking(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/appointments", middleware.AuthMiddleware(), CreateAppointment)

	token, err := utils.GenerateToken(1, "patient")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAppointment_RejectsInvalidType(t *testing.T) {
	w := postBooking(t, `{
		"hospitalName": "City General",
		"doctor": "Dr. Rao",
		"specialty": "Cardiology",
		"date": "2030-01-15",
		"time": "10:30",
		"type": "Home-visit",
		"reason": "chest pain"
	}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid appointment input")
}

func TestCreateAppointment_RejectsMissingDoctor(t *testing.T) {
	w := postBooking(t, `{
		"hospitalName": "City General",
		"specialty": "Cardiology",
		"date": "2030-01-15",
		"time": "10:30",
		"type": "In-person",
		"reason": "chest pain"
	}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAppointment_RejectsPastDate(t *testing.T) {
	w := postBooking(t, `{
		"hospitalName": "City General",
		"doctor": "Dr. Rao",
		"specialty": "Cardiology",
		"date": "2020-01-15",
		"time": "10:30",
		"type": "Telemedicine",
		"reason": "follow-up"
	}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "past")
}

func bindTransferAction(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var input models.TransferActionInput
	return c.ShouldBindJSON(&input)
}

func TestTransferActionInput_AllowsOnlyApproveReject(t *testing.T) {
	require.NoError(t, bindTransferAction(t, `{"action":"approve"}`))
	require.NoError(t, bindTransferAction(t, `{"action":"reject"}`))

	require.Error(t, bindTransferAction(t, `{"action":"forward"}`))
	require.Error(t, bindTransferAction(t, `{"action":""}`))
	require.Error(t, bindTransferAction(t, `{}`))
}
