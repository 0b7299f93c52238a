package vitals

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"vitalsigns.dev/vitals-monitor-service/pkg/common"
	"vitalsigns.dev/vitals-monitor-service/pkg/models"
	"vitalsigns.dev/vitals-monitor-service/pkg/patients"
	_ "vitalsigns.dev/vitals-monitor-service/pkg/testing"
)

func TestRecordReading(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	patient := seedTestPatient(t, engine, "center-a")

	reading, alerts, err := engine.Recorder.RecordReading(patient.ID, &models.ReadingInput{
		RecordedBy:  "dr-hamilton",
		Temperature: common.Ptr(37.8),
		Height:      common.Ptr(175.0),
		Weight:      common.Ptr(70.0),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, reading.ID)
	assert.Equal(t, patient.ID, reading.PatientID)
	assert.False(t, reading.RecordedAt.IsZero())
	require.NotNil(t, reading.BodyMassIndex)
	assert.InDelta(t, 22.86, *reading.BodyMassIndex, 0.01)

	// one warning for the elevated temperature, nothing else
	require.Len(t, alerts, 1)
	assert.Equal(t, models.SeverityWarning, alerts[0].Type)
	assert.Equal(t, ParamTemperature, alerts[0].Parameter)

	// verify persisted
	var saved models.VitalReading
	err = engine.Db.Conn.Where("id = ?", reading.ID).First(&saved).Error
	require.NoError(t, err)
	assert.Equal(t, reading.PatientID, saved.PatientID)
	require.NotNil(t, saved.Temperature)
	assert.Equal(t, 37.8, *saved.Temperature)
}

func TestRecordReadingNoBMIWithoutBothFields(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	patient := seedTestPatient(t, engine, "center-a")

	reading, _, err := engine.Recorder.RecordReading(patient.ID, &models.ReadingInput{
		RecordedBy: "dr-hamilton",
		Weight:     common.Ptr(70.0),
	})
	require.NoError(t, err)
	assert.Nil(t, reading.BodyMassIndex)
}

func TestRecordReading_Validation(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	patient := seedTestPatient(t, engine, "center-a")

	cases := []struct {
		name  string
		input *models.ReadingInput
		field string
	}{
		{
			name:  "pain scale above 10",
			input: &models.ReadingInput{RecordedBy: "rn", PainScale: common.Ptr(11)},
			field: ParamPainScale,
		},
		{
			name:  "pain scale below 0",
			input: &models.ReadingInput{RecordedBy: "rn", PainScale: common.Ptr(-1)},
			field: ParamPainScale,
		},
		{
			name:  "non-positive temperature",
			input: &models.ReadingInput{RecordedBy: "rn", Temperature: common.Ptr(0.0)},
			field: ParamTemperature,
		},
		{
			name:  "non-finite heart rate",
			input: &models.ReadingInput{RecordedBy: "rn", HeartRate: common.Ptr(math.NaN())},
			field: ParamHeartRate,
		},
		{
			name:  "negative weight",
			input: &models.ReadingInput{RecordedBy: "rn", Weight: common.Ptr(-3.0)},
			field: FieldWeight,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := engine.Recorder.RecordReading(patient.ID, tc.input)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}

	// nothing was persisted for the rejected inputs
	var count int64
	err := engine.Db.Conn.Model(&models.VitalReading{}).Where("patient_id = ?", patient.ID).Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestRecordReadingUnknownPatient(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	_, _, err := engine.Recorder.RecordReading(uuid.NewString(), &models.ReadingInput{
		RecordedBy:  "rn",
		Temperature: common.Ptr(36.8),
	})
	assert.True(t, errors.Is(err, patients.ErrNotFound))
}

func TestRecordReading_WithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, engine, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	patient := seedTestPatient(t, engine, "center-a")

	// critical temperature plus warning heart rate: only the critical line
	// is emitted, listing the critical vitals
	reading, alerts, err := engine.Recorder.RecordReading(patient.ID, &models.ReadingInput{
		RecordedBy:  "dr-hamilton",
		Temperature: common.Ptr(39.5),
		HeartRate:   common.Ptr(105.0),
	})
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	logs := ParseLogs(buf)

	{
		found := false
		for _, log := range logs {
			lobj := log.(map[string]any)
			if lobj["category"] == "alert" &&
				lobj["logger"] == "vitals_engine" &&
				lobj["level"] == "error" &&
				lobj["msg"] == "Critical vitals recorded" &&
				lobj["reading_id"] == reading.ID &&
				lobj["vitals"] == "temperature=39.5°C" {
				found = true
			}
		}
		assert.True(t, found, "expected critical escalation log line")
	}

	{
		// no warning line when a critical one was emitted
		for _, log := range logs {
			lobj := log.(map[string]any)
			assert.NotEqual(t, "Abnormal vitals recorded", lobj["msg"])
		}
	}
}

func TestRecordReadingWarningLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, engine, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	patient := seedTestPatient(t, engine, "center-a")

	reading, alerts, err := engine.Recorder.RecordReading(patient.ID, &models.ReadingInput{
		RecordedBy: "dr-hamilton",
		HeartRate:  common.Ptr(105.0),
	})
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	logs := ParseLogs(buf)

	found := false
	for _, log := range logs {
		lobj := log.(map[string]any)
		if lobj["category"] == "alert" &&
			lobj["logger"] == "vitals_engine" &&
			lobj["level"] == "warn" &&
			lobj["msg"] == "Abnormal vitals recorded" &&
			lobj["reading_id"] == reading.ID &&
			lobj["vitals"] == "heartRate=105bpm" {
			found = true
		}
	}
	assert.True(t, found, "expected warning escalation log line")
}
