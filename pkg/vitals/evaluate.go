package vitals

import "vitalsigns.dev/vitals-monitor-service/pkg/models"

// Evaluation is the tagged classification result for one (parameter, value)
// pair. Range carries the violated band (the critical band for CRITICAL, the
// normal band for WARNING) and is zero for NORMAL.
type Evaluation struct {
	Severity models.Severity
	Range    models.Range
	Unit     string
}

func (ev Evaluation) Alerting() bool {
	return ev.Severity != models.SeverityNormal
}

// Evaluate classifies one value against the catalog. Critical is checked
// first: a value outside the critical band is CRITICAL regardless of the
// normal band. Normal bounds are inclusive.
func (c *Catalog) Evaluate(parameter string, value float64) Evaluation {
	entry := c.Entry(parameter)

	if parameter == ParamPainScale {
		if value >= painAlertFloor {
			return Evaluation{Severity: models.SeverityWarning, Range: entry.Normal, Unit: entry.Unit}
		}
		return Evaluation{Severity: models.SeverityNormal}
	}

	if value < entry.Critical.Min || value > entry.Critical.Max {
		return Evaluation{Severity: models.SeverityCritical, Range: entry.Critical, Unit: entry.Unit}
	}
	if value < entry.Normal.Min || value > entry.Normal.Max {
		return Evaluation{Severity: models.SeverityWarning, Range: entry.Normal, Unit: entry.Unit}
	}
	return Evaluation{Severity: models.SeverityNormal}
}
