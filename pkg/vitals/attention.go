package vitals

import (
	"sort"
	"time"

	"go.uber.org/zap"
	"vitalsigns.dev/vitals-monitor-service/pkg/common"
	"vitalsigns.dev/vitals-monitor-service/pkg/models"
)

const (
	DefaultAttentionLookback = 24 * time.Hour

	// Caps the windowed fetch to bound ranking cost on busy centers.
	attentionFetchLimit = 100
)

// rankAttention builds the needs-attention list: one entry per patient with
// at least one alerting reading in the lookback window, most recent alerting
// reading per patient, patients with a CRITICAL alert first and recency as
// the only tie-break. The ranking is computed at read time from thresholds
// and readings, never cached or materialized.
func (e *Engine) rankAttention(lookback time.Duration, careCenterID string) ([]models.AttentionEntry, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameVitalsEngine,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAttention),
	)

	if lookback <= 0 {
		lookback = DefaultAttentionLookback
	}
	since := time.Now().Add(-lookback)

	q := e.Db.Conn.Model(&models.VitalReading{}).
		Select("vital_readings.*").
		Where("vital_readings.recorded_at >= ?", since)
	if careCenterID != "" {
		q = q.Joins("JOIN patients ON patients.id = vital_readings.patient_id").
			Where("patients.care_center_id = ?", careCenterID)
	}

	var readings []models.VitalReading
	err := q.Order("vital_readings.recorded_at desc").
		Limit(attentionFetchLimit).
		Find(&readings).Error
	if err != nil {
		return nil, err
	}

	// Re-sort in memory so the first-match-wins dedupe below never depends
	// on store iteration order.
	sort.SliceStable(readings, func(i, j int) bool {
		return readings[i].RecordedAt.After(readings[j].RecordedAt)
	})

	seen := map[string]bool{}
	var entries []models.AttentionEntry
	for i := range readings {
		r := &readings[i]
		if seen[r.PatientID] {
			continue
		}
		alerts := e.Catalog.ComposeAlerts(r)
		if len(alerts) == 0 {
			// not marked seen: an older alerting reading of this patient
			// may still qualify
			continue
		}
		seen[r.PatientID] = true

		patient, err := e.Patients.GetPatient(r.PatientID)
		if err != nil {
			return nil, err
		}

		entries = append(entries, models.AttentionEntry{
			PatientID:           r.PatientID,
			FirstName:           patient.FirstName,
			LastName:            patient.LastName,
			MedicalRecordNumber: patient.MedicalRecordNumber,
			DateOfBirth:         patient.DateOfBirth,
			ReadingID:           r.ID,
			RecordedAt:          r.RecordedAt,
			RecordedBy:          r.RecordedBy,
			Alerts:              alerts,
		})
	}

	// Critical patients first; within the same severity bucket order is
	// purely by recency, there is no finer ranking among criticals.
	sort.SliceStable(entries, func(i, j int) bool {
		ci := hasSeverity(entries[i].Alerts, models.SeverityCritical)
		cj := hasSeverity(entries[j].Alerts, models.SeverityCritical)
		if ci != cj {
			return ci
		}
		return entries[i].RecordedAt.After(entries[j].RecordedAt)
	})

	logger.Info("Ranked attention list",
		zap.Int("patients", len(entries)),
		zap.String("care_center_id", careCenterID))

	return entries, nil
}

type IAttentionImpl struct {
	engine *Engine
}

func (ia *IAttentionImpl) RankAttention(lookback time.Duration, careCenterID string) ([]models.AttentionEntry, error) {
	return ia.engine.rankAttention(lookback, careCenterID)
}

func (e *Engine) GetIAttention() IAttention {
	return &IAttentionImpl{engine: e}
}
