package models

import "time"

type Severity string

const (
	SeverityNormal   Severity = "NORMAL"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

// Range is one clinical band (normal or critical) for a parameter.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

type Patient struct {
	ID                  string    `gorm:"primaryKey" json:"id"`
	FirstName           string    `json:"firstName"`
	LastName            string    `json:"lastName"`
	MedicalRecordNumber string    `gorm:"uniqueIndex" json:"medicalRecordNumber"`
	DateOfBirth         time.Time `json:"dateOfBirth"`
	CareCenterID        string    `gorm:"index" json:"careCenterId"`

	Readings []VitalReading `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

// VitalReading is one measurement event for a patient. Readings are written
// once and never updated; corrections are recorded as new readings.
type VitalReading struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	PatientID  string    `gorm:"index" json:"patientId"`
	RecordedAt time.Time `gorm:"index" json:"recordedAt"`
	RecordedBy string    `json:"recordedBy"`

	Temperature      *float64 `json:"temperature,omitempty"`
	Systolic         *float64 `json:"systolic,omitempty"`
	Diastolic        *float64 `json:"diastolic,omitempty"`
	HeartRate        *float64 `json:"heartRate,omitempty"`
	RespiratoryRate  *float64 `json:"respiratoryRate,omitempty"`
	OxygenSaturation *float64 `json:"oxygenSaturation,omitempty"`
	Height           *float64 `json:"height,omitempty"`
	Weight           *float64 `json:"weight,omitempty"`
	PainScale        *int     `json:"painScale,omitempty"`
	BloodGlucose     *float64 `json:"bloodGlucose,omitempty"`

	// Derived once at creation time when both height and weight are present,
	// never recomputed retroactively.
	BodyMassIndex *float64 `json:"bodyMassIndex,omitempty"`

	Notes *string `json:"notes,omitempty"`
}

// Alert is a derived view over one reading and the threshold catalog. It is
// recomputed on every evaluation and never persisted, so re-evaluating the
// same reading against the same catalog always reproduces the same alerts.
type Alert struct {
	Type      Severity  `json:"type"`
	Parameter string    `json:"parameter"`
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
	Range     Range     `json:"range"`
	Timestamp time.Time `json:"timestamp"`
	PatientID string    `json:"patientId"`
}

// ReadingInput carries the caller-supplied measurements for one new reading.
// Id and timestamp are always server-assigned, a caller can not backdate.
type ReadingInput struct {
	RecordedBy       string
	Temperature      *float64
	Systolic         *float64
	Diastolic        *float64
	HeartRate        *float64
	RespiratoryRate  *float64
	OxygenSaturation *float64
	Height           *float64
	Weight           *float64
	PainScale        *int
	BloodGlucose     *float64
	Notes            *string
}

type ReadingQuery struct {
	Limit    int
	Offset   int
	DateFrom *time.Time
	DateTo   *time.Time
}

// EvaluatedReading is a reading together with its freshly composed alerts.
type EvaluatedReading struct {
	VitalReading
	Alerts              []Alert `json:"alerts"`
	IsWithinNormalRange bool    `json:"isWithinNormalRange"`
}

// ReadingAlerts is the alert view of one reading, for the per-patient alert
// history endpoint.
type ReadingAlerts struct {
	ReadingID  string    `json:"readingId"`
	RecordedAt time.Time `json:"recordedAt"`
	Alerts     []Alert   `json:"alerts"`
}

// AttentionEntry is one patient on the needs-attention list: the most recent
// alerting reading in the lookback window plus display fields.
type AttentionEntry struct {
	PatientID           string    `json:"patientId"`
	FirstName           string    `json:"firstName"`
	LastName            string    `json:"lastName"`
	MedicalRecordNumber string    `json:"medicalRecordNumber"`
	DateOfBirth         time.Time `json:"dateOfBirth"`
	ReadingID           string    `json:"readingId"`
	RecordedAt          time.Time `json:"recordedAt"`
	RecordedBy          string    `json:"recordedBy"`
	Alerts              []Alert   `json:"alerts"`
}

type TrendPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// PeriodStatistics aggregates a bounded sample of recent readings. A reading
// carrying both a WARNING and a CRITICAL alert counts toward both the warning
// and the critical counter; the buckets are intentionally not mutually
// exclusive, for backward compatibility with the registry dashboard.
type PeriodStatistics struct {
	TotalMeasurements    int                `json:"totalMeasurements"`
	CriticalMeasurements int                `json:"criticalMeasurements"`
	WarningMeasurements  int                `json:"warningMeasurements"`
	AverageVitals        map[string]float64 `json:"averageVitals"`
	AbnormalReadingCount int                `json:"abnormalReadingCount"`
}
