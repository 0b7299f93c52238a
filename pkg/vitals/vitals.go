package vitals

import (
	"time"

	"vitalsigns.dev/vitals-monitor-service/pkg/db"
	"vitalsigns.dev/vitals-monitor-service/pkg/models"
	"vitalsigns.dev/vitals-monitor-service/pkg/patients"
)

type IRecorder interface {
	RecordReading(patientID string, input *models.ReadingInput) (*models.VitalReading, []models.Alert, error)
}

type IQuery interface {
	ReadingsByPatient(patientID string, query models.ReadingQuery) ([]models.EvaluatedReading, error)
	LatestReading(patientID string) (*models.VitalReading, error)
	AlertsByPatient(patientID string, hours int) ([]models.ReadingAlerts, error)
}

type IAttention interface {
	RankAttention(lookback time.Duration, careCenterID string) ([]models.AttentionEntry, error)
}

type IStats interface {
	Trend(patientID string, parameter string, days int) ([]models.TrendPoint, error)
	PeriodStatistics(careCenterID string, days int) (*models.PeriodStatistics, error)
}

// Engine is the vital-signs monitoring core. It is stateless per request: the
// only shared state is the reading store and the read-only catalog.
type Engine struct {
	Db       db.DB
	Catalog  *Catalog
	Patients patients.ILookup

	Recorder  IRecorder
	Query     IQuery
	Attention IAttention
	Stats     IStats
}

type ServiceOpts struct {
	Recorder  IRecorder
	Query     IQuery
	Attention IAttention
	Stats     IStats
}

func (e *Engine) WithServices(opts ServiceOpts) *Engine {
	if opts.Recorder != nil {
		e.Recorder = opts.Recorder
	}
	if opts.Query != nil {
		e.Query = opts.Query
	}
	if opts.Attention != nil {
		e.Attention = opts.Attention
	}
	if opts.Stats != nil {
		e.Stats = opts.Stats
	}
	return e
}
