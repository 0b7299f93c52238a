package vitals

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"vitalsigns.dev/vitals-monitor-service/pkg/db"
	"vitalsigns.dev/vitals-monitor-service/pkg/models"
	"vitalsigns.dev/vitals-monitor-service/pkg/patients"
	"vitalsigns.dev/vitals-monitor-service/pkg/vitals/mocks"
)

func GetMockEngineWithMemorySqliteDialector(t *testing.T, useMockRecorder, useMockQuery, useMockAttention, useMockStats bool) (
	*gomock.Controller,
	*Engine,
	*mocks.MockIRecorder,
	*mocks.MockIQuery,
	*mocks.MockIAttention,
	*mocks.MockIStats,
) {
	ctrl := gomock.NewController(t)

	mockRecorder := mocks.NewMockIRecorder(ctrl)
	mockQuery := mocks.NewMockIQuery(ctrl)
	mockAttention := mocks.NewMockIAttention(ctrl)
	mockStats := mocks.NewMockIStats(ctrl)

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	engine := &Engine{
		Db:       *dbInstance,
		Catalog:  NewDefaultCatalog(),
		Patients: &patients.Service{Db: *dbInstance},
	}

	recorderService := engine.GetIRecorder()
	if useMockRecorder {
		recorderService = mockRecorder
	}

	queryService := engine.GetIQuery()
	if useMockQuery {
		queryService = mockQuery
	}

	attentionService := engine.GetIAttention()
	if useMockAttention {
		attentionService = mockAttention
	}

	statsService := engine.GetIStats()
	if useMockStats {
		statsService = mockStats
	}

	engine.WithServices(ServiceOpts{
		Recorder:  recorderService,
		Query:     queryService,
		Attention: attentionService,
		Stats:     statsService,
	})

	return ctrl, engine, mockRecorder, mockQuery, mockAttention, mockStats
}

func seedTestPatient(t *testing.T, e *Engine, careCenterID string) *models.Patient {
	t.Helper()

	patient := &models.Patient{
		ID:                  uuid.NewString(),
		FirstName:           "Ada",
		LastName:            "Lovelace",
		MedicalRecordNumber: uuid.NewString(),
		DateOfBirth:         time.Date(1982, time.March, 14, 0, 0, 0, 0, time.UTC),
		CareCenterID:        careCenterID,
	}
	err := e.Db.Conn.Create(patient).Error
	require.NoError(t, err)
	return patient
}

func seedTestReading(t *testing.T, e *Engine, patientID string, recordedAt time.Time, mutate func(*models.VitalReading)) *models.VitalReading {
	t.Helper()

	reading := &models.VitalReading{
		ID:         uuid.NewString(),
		PatientID:  patientID,
		RecordedAt: recordedAt,
		RecordedBy: "nurse-on-duty",
	}
	if mutate != nil {
		mutate(reading)
	}
	err := e.Db.Conn.Create(reading).Error
	require.NoError(t, err)
	return reading
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
