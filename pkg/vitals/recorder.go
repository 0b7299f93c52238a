package vitals

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"vitalsigns.dev/vitals-monitor-service/pkg/common"
	"vitalsigns.dev/vitals-monitor-service/pkg/models"
)

func validateReadingInput(input *models.ReadingInput) error {
	positives := []struct {
		field string
		value *float64
	}{
		{ParamTemperature, input.Temperature},
		{ParamSystolic, input.Systolic},
		{ParamDiastolic, input.Diastolic},
		{ParamHeartRate, input.HeartRate},
		{ParamRespiratoryRate, input.RespiratoryRate},
		{ParamOxygenSaturation, input.OxygenSaturation},
		{FieldHeight, input.Height},
		{FieldWeight, input.Weight},
		{ParamBloodGlucose, input.BloodGlucose},
	}

	for _, p := range positives {
		if p.value == nil {
			continue
		}
		if math.IsNaN(*p.value) || math.IsInf(*p.value, 0) {
			return &ValidationError{Field: p.field, Reason: "must be a finite number"}
		}
		if *p.value <= 0 {
			return &ValidationError{Field: p.field, Reason: "must be greater than zero"}
		}
	}

	if input.PainScale != nil && (*input.PainScale < 0 || *input.PainScale > 10) {
		return &ValidationError{Field: ParamPainScale, Reason: "must be between 0 and 10"}
	}

	return nil
}

func (e *Engine) recordReading(patientID string, input *models.ReadingInput) (*models.VitalReading, []models.Alert, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameVitalsEngine,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRecorder),
	)

	if err := validateReadingInput(input); err != nil {
		return nil, nil, err
	}

	if _, err := e.Patients.GetPatient(patientID); err != nil {
		return nil, nil, err
	}

	// Id and timestamp are server-assigned; the caller can not backdate.
	reading := models.VitalReading{
		ID:               uuid.NewString(),
		PatientID:        patientID,
		RecordedAt:       time.Now(),
		RecordedBy:       input.RecordedBy,
		Temperature:      input.Temperature,
		Systolic:         input.Systolic,
		Diastolic:        input.Diastolic,
		HeartRate:        input.HeartRate,
		RespiratoryRate:  input.RespiratoryRate,
		OxygenSaturation: input.OxygenSaturation,
		Height:           input.Height,
		Weight:           input.Weight,
		PainScale:        input.PainScale,
		BloodGlucose:     input.BloodGlucose,
		Notes:            input.Notes,
	}

	if input.Height != nil && input.Weight != nil {
		meters := *input.Height / 100
		bmi := *input.Weight / (meters * meters)
		reading.BodyMassIndex = &bmi
	}

	logger.Info("Received reading for patient", zap.Reflect("reading", reading))

	if err := e.Db.Conn.Create(&reading).Error; err != nil {
		return nil, nil, err
	}

	logger.Info("Persisted reading for patient", zap.String("reading_id", reading.ID))

	alerts := e.Catalog.ComposeAlerts(&reading)
	e.escalateAlerts(&reading, alerts)

	return &reading, alerts, nil
}

// escalateAlerts emits the severity-graded log lines for a freshly persisted
// reading. Logging here is fire and forget: it must never turn a successful
// write into a failed request, so any panic out of the logging path is
// swallowed. Notification delivery is an external consumer's job.
func (e *Engine) escalateAlerts(reading *models.VitalReading, alerts []models.Alert) {
	defer func() {
		_ = recover()
	}()

	if len(alerts) == 0 {
		return
	}

	var critical, warning []string
	for _, a := range alerts {
		line := fmt.Sprintf("%s=%g%s", a.Parameter, a.Value, a.Unit)
		switch a.Type {
		case models.SeverityCritical:
			critical = append(critical, line)
		case models.SeverityWarning:
			warning = append(warning, line)
		}
	}

	logger := common.GetLoggerWith(
		common.LoggerNameVitalsEngine,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	if len(critical) > 0 {
		logger.Error("Critical vitals recorded",
			zap.String("patient_id", reading.PatientID),
			zap.String("reading_id", reading.ID),
			zap.String("vitals", strings.Join(critical, ", ")))
	} else if len(warning) > 0 {
		logger.Warn("Abnormal vitals recorded",
			zap.String("patient_id", reading.PatientID),
			zap.String("reading_id", reading.ID),
			zap.String("vitals", strings.Join(warning, ", ")))
	}
}

type IRecorderImpl struct {
	engine *Engine
}

func (ir *IRecorderImpl) RecordReading(patientID string, input *models.ReadingInput) (*models.VitalReading, []models.Alert, error) {
	return ir.engine.recordReading(patientID, input)
}

func (e *Engine) GetIRecorder() IRecorder {
	return &IRecorderImpl{engine: e}
}
