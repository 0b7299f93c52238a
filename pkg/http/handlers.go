package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"vitalsigns.dev/vitals-monitor-service/pkg/models"
	"vitalsigns.dev/vitals-monitor-service/pkg/patients"
	"vitalsigns.dev/vitals-monitor-service/pkg/vitals"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

// respondError maps the engine's error taxonomy onto status codes. Domain
// errors arrive here unchanged; the engine does no retries or wrapping.
func respondError(c *gin.Context, err error) {
	var validationErr *vitals.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, patients.ErrNotFound), errors.Is(err, vitals.ErrReadingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

type RegisterPatientRequest struct {
	FirstName           string    `json:"firstName"`
	LastName            string    `json:"lastName"`
	MedicalRecordNumber string    `json:"medicalRecordNumber"`
	DateOfBirth         time.Time `json:"dateOfBirth"`
	CareCenterID        string    `json:"careCenterId"`
}

var registerPatientSchema = z.Struct(z.Shape{
	"FirstName":           z.String().Min(1).Required(),
	"LastName":            z.String().Min(1).Required(),
	"MedicalRecordNumber": z.String().Min(1).Required(),
	"DateOfBirth":         z.Time().Required(),
	"CareCenterID":        z.String(),
})

func (rs *RestfulServer) RegisterPatient(c *gin.Context) {
	var req RegisterPatientRequest
	if err := registerPatientSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	patient, err := rs.Patients.RegisterPatient(&patients.PatientInput{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		MedicalRecordNumber: req.MedicalRecordNumber,
		DateOfBirth:         req.DateOfBirth,
		CareCenterID:        req.CareCenterID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, patient)
}

type ReadingRequest struct {
	RecordedBy       string   `json:"recordedBy"`
	Temperature      *float64 `json:"temperature"`
	Systolic         *float64 `json:"systolic"`
	Diastolic        *float64 `json:"diastolic"`
	HeartRate        *float64 `json:"heartRate"`
	RespiratoryRate  *float64 `json:"respiratoryRate"`
	OxygenSaturation *float64 `json:"oxygenSaturation"`
	Height           *float64 `json:"height"`
	Weight           *float64 `json:"weight"`
	PainScale        *int     `json:"painScale"`
	BloodGlucose     *float64 `json:"bloodGlucose"`
	Notes            *string  `json:"notes"`
}

var readingRequestSchema = z.Struct(z.Shape{
	"RecordedBy":       z.String().Min(1).Required(),
	"Temperature":      z.Ptr(z.Float64()),
	"Systolic":         z.Ptr(z.Float64()),
	"Diastolic":        z.Ptr(z.Float64()),
	"HeartRate":        z.Ptr(z.Float64()),
	"RespiratoryRate":  z.Ptr(z.Float64()),
	"OxygenSaturation": z.Ptr(z.Float64()),
	"Height":           z.Ptr(z.Float64()),
	"Weight":           z.Ptr(z.Float64()),
	"PainScale":        z.Ptr(z.Int()),
	"BloodGlucose":     z.Ptr(z.Float64()),
	"Notes":            z.Ptr(z.String()),
})

func (rs *RestfulServer) PostReading(c *gin.Context) {
	patientID := c.Param("patient_id")

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ReadingRequest
	if err := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	reading, alerts, err := rs.Engine.Recorder.RecordReading(patientID, &models.ReadingInput{
		RecordedBy:       req.RecordedBy,
		Temperature:      req.Temperature,
		Systolic:         req.Systolic,
		Diastolic:        req.Diastolic,
		HeartRate:        req.HeartRate,
		RespiratoryRate:  req.RespiratoryRate,
		OxygenSaturation: req.OxygenSaturation,
		Height:           req.Height,
		Weight:           req.Weight,
		PainScale:        req.PainScale,
		BloodGlucose:     req.BloodGlucose,
		Notes:            req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reading": reading, "alerts": alerts})
}

func (rs *RestfulServer) ListReadings(c *gin.Context) {
	patientID := c.Param("patient_id")

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	query := models.ReadingQuery{}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		query.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be an integer"})
			return
		}
		query.Offset = n
	}
	if v := c.Query("dateFrom"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dateFrom must be RFC3339"})
			return
		}
		query.DateFrom = &t
	}
	if v := c.Query("dateTo"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dateTo must be RFC3339"})
			return
		}
		query.DateTo = &t
	}

	readings, err := rs.Engine.Query.ReadingsByPatient(patientID, query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, readings)
}

func (rs *RestfulServer) GetLatestReading(c *gin.Context) {
	patientID := c.Param("patient_id")

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	reading, err := rs.Engine.Query.LatestReading(patientID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reading)
}

func (rs *RestfulServer) GetTrend(c *gin.Context) {
	patientID := c.Param("patient_id")

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	parameter := c.Query("parameter")
	if parameter == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parameter is required"})
		return
	}

	days := 0
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer"})
			return
		}
		days = n
	}

	points, err := rs.Engine.Stats.Trend(patientID, parameter, days)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, points)
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	patientID := c.Param("patient_id")

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	hours := 0
	if v := c.Query("hours"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "hours must be an integer"})
			return
		}
		hours = n
	}

	alerts, err := rs.Engine.Query.AlertsByPatient(patientID, hours)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (rs *RestfulServer) GetAttentionList(c *gin.Context) {
	var lookback time.Duration
	if v := c.Query("hours"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "hours must be an integer"})
			return
		}
		lookback = time.Duration(n) * time.Hour
	}

	entries, err := rs.Engine.Attention.RankAttention(lookback, c.Query("careCenterId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (rs *RestfulServer) GetStatistics(c *gin.Context) {
	days := 0
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer"})
			return
		}
		days = n
	}

	stats, err := rs.Engine.Stats.PeriodStatistics(c.Query("careCenterId"), days)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	patientID := c.Param("patient_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(patientID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
