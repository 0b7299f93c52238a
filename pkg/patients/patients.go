// Package patients is the engine's view of the patient-record store. The
// monitoring engine only needs identity and display fields plus the care
// center a patient belongs to; the full patient record lives elsewhere.
package patients

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"vitalsigns.dev/vitals-monitor-service/pkg/common"
	"vitalsigns.dev/vitals-monitor-service/pkg/db"
	"vitalsigns.dev/vitals-monitor-service/pkg/models"
)

var ErrNotFound = errors.New("patient not found")

type ILookup interface {
	GetPatient(patientID string) (*models.Patient, error)
}

type PatientInput struct {
	FirstName           string
	LastName            string
	MedicalRecordNumber string
	DateOfBirth         time.Time
	CareCenterID        string
}

type Service struct {
	Db db.DB
}

func (s *Service) GetPatient(patientID string) (*models.Patient, error) {
	var patient models.Patient
	err := s.Db.Conn.First(&patient, "id = ?", patientID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (s *Service) RegisterPatient(input *PatientInput) (*models.Patient, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameVitalsEngine,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryPatient),
	)

	patient := models.Patient{
		ID:                  uuid.NewString(),
		FirstName:           input.FirstName,
		LastName:            input.LastName,
		MedicalRecordNumber: input.MedicalRecordNumber,
		DateOfBirth:         input.DateOfBirth,
		CareCenterID:        input.CareCenterID,
	}

	if err := s.Db.Conn.Create(&patient).Error; err != nil {
		return nil, err
	}

	logger.Info("Registered patient", zap.String("patient_id", patient.ID))

	return &patient, nil
}
