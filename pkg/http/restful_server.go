package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"vitalsigns.dev/vitals-monitor-service/pkg/patients"
	"vitalsigns.dev/vitals-monitor-service/pkg/vitals"
)

type RestfulServer struct {
	Server           *gin.Engine
	Engine           *vitals.Engine
	Patients         *patients.Service
	RateLimiterStore *vitals.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(patientID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(patientID)
	}
}

func (rs *RestfulServer) CheckPatientLimiter(patientID string) bool {
	limiter := rs.GetLimiter(patientID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(patientID string, patientRate float64, patientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(patientID, rate.Limit(patientRate), patientBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	rs.Server.POST("/patients", rs.RegisterPatient)

	patient := rs.Server.Group("/patients/:patient_id")
	{
		patient.POST("/readings", rs.PostReading)
		patient.GET("/readings", rs.ListReadings)
		patient.GET("/readings/latest", rs.GetLatestReading)
		patient.GET("/trend", rs.GetTrend)
		patient.GET("/alerts", rs.GetAlerts)
		patient.POST("/limiter", rs.PostLimiter)
	}

	rs.Server.GET("/attention", rs.GetAttentionList)
	rs.Server.GET("/statistics", rs.GetStatistics)
}
