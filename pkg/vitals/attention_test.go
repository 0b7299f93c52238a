package vitals

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalsigns.dev/vitals-monitor-service/pkg/common"
	"vitalsigns.dev/vitals-monitor-service/pkg/models"
	_ "vitalsigns.dev/vitals-monitor-service/pkg/testing"
)

func TestRankAttentionCriticalFirstThenRecency(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	center := "center-" + uuid.NewString()
	p1 := seedTestPatient(t, engine, center)
	p2 := seedTestPatient(t, engine, center)
	p3 := seedTestPatient(t, engine, center)

	now := time.Now()
	t1 := now.Add(-1 * time.Hour)
	t2 := now.Add(-2 * time.Hour)
	t3 := now.Add(-30 * time.Minute) // newer than t1 but only a warning

	seedTestReading(t, engine, p1.ID, t1, func(r *models.VitalReading) {
		r.Temperature = common.Ptr(39.5) // critical
	})
	seedTestReading(t, engine, p2.ID, t2, func(r *models.VitalReading) {
		r.OxygenSaturation = common.Ptr(87.0) // critical
	})
	seedTestReading(t, engine, p3.ID, t3, func(r *models.VitalReading) {
		r.HeartRate = common.Ptr(105.0) // warning
	})

	entries, err := engine.Attention.RankAttention(0, center)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// criticals first ordered by recency, the newer warning patient last
	assert.Equal(t, p1.ID, entries[0].PatientID)
	assert.Equal(t, p2.ID, entries[1].PatientID)
	assert.Equal(t, p3.ID, entries[2].PatientID)

	assert.Equal(t, p1.FirstName, entries[0].FirstName)
	assert.Equal(t, p1.MedicalRecordNumber, entries[0].MedicalRecordNumber)
}

func TestRankAttentionDedupesByPatient(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	center := "center-" + uuid.NewString()
	patient := seedTestPatient(t, engine, center)

	now := time.Now()
	seedTestReading(t, engine, patient.ID, now.Add(-3*time.Hour), func(r *models.VitalReading) {
		r.Temperature = common.Ptr(39.5)
	})
	newest := seedTestReading(t, engine, patient.ID, now.Add(-1*time.Hour), func(r *models.VitalReading) {
		r.Temperature = common.Ptr(39.7)
	})

	entries, err := engine.Attention.RankAttention(0, center)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, newest.ID, entries[0].ReadingID)
}

func TestRankAttentionSkipsNormalReadingsBeforeDedupe(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	center := "center-" + uuid.NewString()
	patient := seedTestPatient(t, engine, center)

	now := time.Now()
	alerting := seedTestReading(t, engine, patient.ID, now.Add(-2*time.Hour), func(r *models.VitalReading) {
		r.OxygenSaturation = common.Ptr(87.0)
	})
	// most recent reading is back to normal, but the patient still needs
	// attention for the earlier critical one
	seedTestReading(t, engine, patient.ID, now.Add(-10*time.Minute), func(r *models.VitalReading) {
		r.OxygenSaturation = common.Ptr(97.0)
	})

	entries, err := engine.Attention.RankAttention(0, center)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, alerting.ID, entries[0].ReadingID)
}

func TestRankAttentionRespectsLookbackWindow(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	center := "center-" + uuid.NewString()
	patient := seedTestPatient(t, engine, center)

	seedTestReading(t, engine, patient.ID, time.Now().Add(-25*time.Hour), func(r *models.VitalReading) {
		r.Temperature = common.Ptr(39.5)
	})

	entries, err := engine.Attention.RankAttention(0, center)
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = engine.Attention.RankAttention(48*time.Hour, center)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRankAttentionScopesByCareCenter(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	centerA := "center-" + uuid.NewString()
	centerB := "center-" + uuid.NewString()
	inScope := seedTestPatient(t, engine, centerA)
	outOfScope := seedTestPatient(t, engine, centerB)

	now := time.Now()
	seedTestReading(t, engine, inScope.ID, now.Add(-1*time.Hour), func(r *models.VitalReading) {
		r.Temperature = common.Ptr(39.5)
	})
	seedTestReading(t, engine, outOfScope.ID, now.Add(-1*time.Hour), func(r *models.VitalReading) {
		r.Temperature = common.Ptr(39.5)
	})

	entries, err := engine.Attention.RankAttention(0, centerA)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, inScope.ID, entries[0].PatientID)
}
