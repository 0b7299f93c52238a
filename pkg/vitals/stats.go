package vitals

import (
	"fmt"
	"time"

	"vitalsigns.dev/vitals-monitor-service/pkg/models"
)

// Numeric reading fields that are not alerting parameters but still show up
// in trends and averages.
const (
	FieldHeight        = "height"
	FieldWeight        = "weight"
	FieldBodyMassIndex = "bodyMassIndex"
)

const (
	defaultTrendDays = 7
	defaultStatsDays = 30

	// Period statistics run over a bounded sample of the most recent
	// readings in the window.
	statsSampleLimit = 1000
)

var numericFields = map[string]func(*models.VitalReading) *float64{
	ParamTemperature:      func(r *models.VitalReading) *float64 { return r.Temperature },
	ParamSystolic:         func(r *models.VitalReading) *float64 { return r.Systolic },
	ParamDiastolic:        func(r *models.VitalReading) *float64 { return r.Diastolic },
	ParamHeartRate:        func(r *models.VitalReading) *float64 { return r.HeartRate },
	ParamRespiratoryRate:  func(r *models.VitalReading) *float64 { return r.RespiratoryRate },
	ParamOxygenSaturation: func(r *models.VitalReading) *float64 { return r.OxygenSaturation },
	ParamBloodGlucose:     func(r *models.VitalReading) *float64 { return r.BloodGlucose },
	FieldHeight:           func(r *models.VitalReading) *float64 { return r.Height },
	FieldWeight:           func(r *models.VitalReading) *float64 { return r.Weight },
	FieldBodyMassIndex:    func(r *models.VitalReading) *float64 { return r.BodyMassIndex },
	ParamPainScale: func(r *models.VitalReading) *float64 {
		if r.PainScale == nil {
			return nil
		}
		v := float64(*r.PainScale)
		return &v
	},
}

// trend returns the single-parameter time series for one patient, ascending
// by time. Re-querying the same window is deterministic given the same
// underlying readings.
func (e *Engine) trend(patientID string, parameter string, days int) ([]models.TrendPoint, error) {
	accessor, ok := numericFields[parameter]
	if !ok {
		// parameter comes from the caller, so this is a data error, not a
		// programming one
		return nil, &ValidationError{Field: "parameter", Reason: fmt.Sprintf("unknown parameter %q", parameter)}
	}

	if _, err := e.Patients.GetPatient(patientID); err != nil {
		return nil, err
	}

	if days <= 0 {
		days = defaultTrendDays
	}
	since := time.Now().AddDate(0, 0, -days)

	var readings []models.VitalReading
	err := e.Db.Conn.
		Where("patient_id = ? AND recorded_at >= ?", patientID, since).
		Order("recorded_at asc").
		Find(&readings).Error
	if err != nil {
		return nil, err
	}

	points := []models.TrendPoint{}
	for i := range readings {
		if v := accessor(&readings[i]); v != nil {
			points = append(points, models.TrendPoint{
				Timestamp: readings[i].RecordedAt,
				Value:     *v,
			})
		}
	}
	return points, nil
}

// periodStatistics aggregates the most recent readings (bounded sample) in
// the window, optionally scoped to one care center.
//
// A reading whose alerts contain both a WARNING and a CRITICAL increments
// both counters; the buckets are deliberately not mutually exclusive. The
// registry dashboard was built against this behavior, so it is preserved
// bit-for-bit pending product sign-off on an exclusive classification.
func (e *Engine) periodStatistics(careCenterID string, days int) (*models.PeriodStatistics, error) {
	if days <= 0 {
		days = defaultStatsDays
	}
	since := time.Now().AddDate(0, 0, -days)

	q := e.Db.Conn.Model(&models.VitalReading{}).
		Select("vital_readings.*").
		Where("vital_readings.recorded_at >= ?", since)
	if careCenterID != "" {
		q = q.Joins("JOIN patients ON patients.id = vital_readings.patient_id").
			Where("patients.care_center_id = ?", careCenterID)
	}

	var readings []models.VitalReading
	err := q.Order("vital_readings.recorded_at desc").
		Limit(statsSampleLimit).
		Find(&readings).Error
	if err != nil {
		return nil, err
	}

	stats := &models.PeriodStatistics{
		TotalMeasurements: len(readings),
		AverageVitals:     map[string]float64{},
	}

	sums := map[string]float64{}
	counts := map[string]int{}

	for i := range readings {
		r := &readings[i]
		alerts := e.Catalog.ComposeAlerts(r)

		if hasSeverity(alerts, models.SeverityCritical) {
			stats.CriticalMeasurements++
		}
		if hasSeverity(alerts, models.SeverityWarning) {
			stats.WarningMeasurements++
		}
		if len(alerts) > 0 {
			stats.AbnormalReadingCount++
		}

		for name, accessor := range numericFields {
			if v := accessor(r); v != nil {
				sums[name] += *v
				counts[name]++
			}
		}
	}

	// Fields nobody recorded are omitted, not reported as zero.
	for name, n := range counts {
		stats.AverageVitals[name] = sums[name] / float64(n)
	}

	return stats, nil
}

type IStatsImpl struct {
	engine *Engine
}

func (is *IStatsImpl) Trend(patientID string, parameter string, days int) ([]models.TrendPoint, error) {
	return is.engine.trend(patientID, parameter, days)
}

func (is *IStatsImpl) PeriodStatistics(careCenterID string, days int) (*models.PeriodStatistics, error) {
	return is.engine.periodStatistics(careCenterID, days)
}

func (e *Engine) GetIStats() IStats {
	return &IStatsImpl{engine: e}
}
