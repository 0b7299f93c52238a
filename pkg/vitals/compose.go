package vitals

import "vitalsigns.dev/vitals-monitor-service/pkg/models"

// evaluationOrder fixes both which reading fields are checked and the order
// alerts come out in. Consumers (logs, dashboard) display alerts in produced
// order, so this is part of the contract.
var evaluationOrder = []string{
	ParamTemperature,
	ParamSystolic,
	ParamDiastolic,
	ParamHeartRate,
	ParamRespiratoryRate,
	ParamOxygenSaturation,
	ParamPainScale,
	ParamBloodGlucose,
}

// presentValue returns the evaluable value of one parameter on a reading.
// Blood pressure only counts as present when both halves of the pair were
// measured; a lone systolic or diastolic value raises no alert.
func presentValue(r *models.VitalReading, parameter string) (float64, bool) {
	deref := func(v *float64) (float64, bool) {
		if v == nil {
			return 0, false
		}
		return *v, true
	}

	switch parameter {
	case ParamTemperature:
		return deref(r.Temperature)
	case ParamSystolic:
		if r.Diastolic == nil {
			return 0, false
		}
		return deref(r.Systolic)
	case ParamDiastolic:
		if r.Systolic == nil {
			return 0, false
		}
		return deref(r.Diastolic)
	case ParamHeartRate:
		return deref(r.HeartRate)
	case ParamRespiratoryRate:
		return deref(r.RespiratoryRate)
	case ParamOxygenSaturation:
		return deref(r.OxygenSaturation)
	case ParamPainScale:
		if r.PainScale == nil {
			return 0, false
		}
		return float64(*r.PainScale), true
	case ParamBloodGlucose:
		return deref(r.BloodGlucose)
	}
	return 0, false
}

// ComposeAlerts evaluates every present parameter of a reading in the fixed
// evaluation order. Absent fields are skipped; the result may be empty. Given
// the same reading and catalog the output is identical and identically
// ordered on every run, since alerts are never stored anywhere.
func (c *Catalog) ComposeAlerts(reading *models.VitalReading) []models.Alert {
	var alerts []models.Alert
	for _, parameter := range evaluationOrder {
		value, ok := presentValue(reading, parameter)
		if !ok {
			continue
		}
		ev := c.Evaluate(parameter, value)
		if !ev.Alerting() {
			continue
		}
		alerts = append(alerts, models.Alert{
			Type:      ev.Severity,
			Parameter: parameter,
			Value:     value,
			Unit:      ev.Unit,
			Range:     ev.Range,
			Timestamp: reading.RecordedAt,
			PatientID: reading.PatientID,
		})
	}
	return alerts
}

// IsWithinNormalRange reports whether every present parameter of the reading
// sits inside its normal band. A reading with no evaluable parameters is
// vacuously within range.
func (c *Catalog) IsWithinNormalRange(reading *models.VitalReading) bool {
	return len(c.ComposeAlerts(reading)) == 0
}

func hasSeverity(alerts []models.Alert, severity models.Severity) bool {
	for _, a := range alerts {
		if a.Type == severity {
			return true
		}
	}
	return false
}
