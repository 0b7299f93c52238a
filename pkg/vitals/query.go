package vitals

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"vitalsigns.dev/vitals-monitor-service/pkg/models"
)

const defaultReadingPageSize = 50

func (e *Engine) readingsByPatient(patientID string, query models.ReadingQuery) ([]models.EvaluatedReading, error) {
	if _, err := e.Patients.GetPatient(patientID); err != nil {
		return nil, err
	}

	if query.Limit <= 0 {
		query.Limit = defaultReadingPageSize
	}

	q := e.Db.Conn.Where("patient_id = ?", patientID)
	if query.DateFrom != nil {
		q = q.Where("recorded_at >= ?", *query.DateFrom)
	}
	if query.DateTo != nil {
		q = q.Where("recorded_at <= ?", *query.DateTo)
	}

	var readings []models.VitalReading
	err := q.Order("recorded_at desc").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&readings).Error
	if err != nil {
		return nil, err
	}

	evaluated := make([]models.EvaluatedReading, len(readings))
	for i := range readings {
		alerts := e.Catalog.ComposeAlerts(&readings[i])
		evaluated[i] = models.EvaluatedReading{
			VitalReading:        readings[i],
			Alerts:              alerts,
			IsWithinNormalRange: len(alerts) == 0,
		}
	}
	return evaluated, nil
}

func (e *Engine) latestReading(patientID string) (*models.VitalReading, error) {
	if _, err := e.Patients.GetPatient(patientID); err != nil {
		return nil, err
	}

	var reading models.VitalReading
	err := e.Db.Conn.
		Where("patient_id = ?", patientID).
		Order("recorded_at desc").
		First(&reading).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReadingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

func (e *Engine) alertsByPatient(patientID string, hours int) ([]models.ReadingAlerts, error) {
	if _, err := e.Patients.GetPatient(patientID); err != nil {
		return nil, err
	}

	if hours <= 0 {
		hours = 24
	}
	since := time.Now().Add(-time.Duration(hours) * time.Hour)

	var readings []models.VitalReading
	err := e.Db.Conn.
		Where("patient_id = ? AND recorded_at >= ?", patientID, since).
		Order("recorded_at desc").
		Find(&readings).Error
	if err != nil {
		return nil, err
	}

	var result []models.ReadingAlerts
	for i := range readings {
		alerts := e.Catalog.ComposeAlerts(&readings[i])
		if len(alerts) == 0 {
			continue
		}
		result = append(result, models.ReadingAlerts{
			ReadingID:  readings[i].ID,
			RecordedAt: readings[i].RecordedAt,
			Alerts:     alerts,
		})
	}
	return result, nil
}

type IQueryImpl struct {
	engine *Engine
}

func (iq *IQueryImpl) ReadingsByPatient(patientID string, query models.ReadingQuery) ([]models.EvaluatedReading, error) {
	return iq.engine.readingsByPatient(patientID, query)
}

func (iq *IQueryImpl) LatestReading(patientID string) (*models.VitalReading, error) {
	return iq.engine.latestReading(patientID)
}

func (iq *IQueryImpl) AlertsByPatient(patientID string, hours int) ([]models.ReadingAlerts, error) {
	return iq.engine.alertsByPatient(patientID, hours)
}

func (e *Engine) GetIQuery() IQuery {
	return &IQueryImpl{engine: e}
}
