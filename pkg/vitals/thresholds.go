package vitals

import (
	"fmt"

	"vitalsigns.dev/vitals-monitor-service/pkg/models"
)

// Parameter names as they appear on readings, in alerts and in API payloads.
const (
	ParamTemperature      = "temperature"
	ParamSystolic         = "systolic"
	ParamDiastolic        = "diastolic"
	ParamHeartRate        = "heartRate"
	ParamRespiratoryRate  = "respiratoryRate"
	ParamOxygenSaturation = "oxygenSaturation"
	ParamPainScale        = "painScale"
	ParamBloodGlucose     = "bloodGlucose"
)

// Pain is self-reported, so there is no critical band for it. A report of 8
// out of 10 or higher raises a WARNING; this is product policy, not a numeric
// range check.
const painAlertFloor = 8

// ThresholdRange is the static clinical configuration for one parameter. The
// critical band always fully contains the normal band; values outside normal
// but inside critical are WARNING, values outside critical are CRITICAL.
type ThresholdRange struct {
	Normal   models.Range `json:"normal"`
	Critical models.Range `json:"critical"`
	Unit     string       `json:"unit"`
}

// Catalog holds the threshold table. It is built once at process start,
// injected into the engine and never mutated, so unsynchronized concurrent
// reads are safe. There is no runtime create/update path: thresholds are
// configuration, not user data.
type Catalog struct {
	entries map[string]ThresholdRange
}

// NewDefaultCatalog builds the catalog with the registry's clinical table.
// The exact values are load bearing: downstream consumers were calibrated
// against them.
func NewDefaultCatalog() *Catalog {
	c := &Catalog{entries: map[string]ThresholdRange{
		ParamTemperature: {
			Normal:   models.Range{Min: 36.1, Max: 37.2},
			Critical: models.Range{Min: 35.0, Max: 39.0},
			Unit:     "°C",
		},
		ParamSystolic: {
			Normal:   models.Range{Min: 90, Max: 120},
			Critical: models.Range{Min: 70, Max: 180},
			Unit:     "mmHg",
		},
		ParamDiastolic: {
			Normal:   models.Range{Min: 60, Max: 80},
			Critical: models.Range{Min: 40, Max: 110},
			Unit:     "mmHg",
		},
		ParamHeartRate: {
			Normal:   models.Range{Min: 60, Max: 100},
			Critical: models.Range{Min: 40, Max: 150},
			Unit:     "bpm",
		},
		ParamRespiratoryRate: {
			Normal:   models.Range{Min: 12, Max: 20},
			Critical: models.Range{Min: 8, Max: 30},
			Unit:     "breaths/min",
		},
		ParamOxygenSaturation: {
			Normal:   models.Range{Min: 95, Max: 100},
			Critical: models.Range{Min: 88, Max: 100},
			Unit:     "%",
		},
		ParamBloodGlucose: {
			Normal:   models.Range{Min: 70, Max: 140},
			Critical: models.Range{Min: 40, Max: 400},
			Unit:     "mg/dL",
		},
		// Critical band unused: pain is special-cased in Evaluate.
		ParamPainScale: {
			Normal:   models.Range{Min: 0, Max: 10},
			Critical: models.Range{Min: 0, Max: 10},
			Unit:     "",
		},
	}}

	for parameter, entry := range c.entries {
		if entry.Critical.Min > entry.Normal.Min || entry.Critical.Max < entry.Normal.Max {
			panic(fmt.Sprintf("vitals: critical range does not contain normal range for %q", parameter))
		}
	}

	return c
}

// Entry returns the threshold configuration for a parameter. Every field on a
// reading has a catalog entry; asking for anything else is a programming
// defect and fails loudly.
func (c *Catalog) Entry(parameter string) ThresholdRange {
	entry, ok := c.entries[parameter]
	if !ok {
		panic(fmt.Sprintf("vitals: parameter %q has no threshold entry", parameter))
	}
	return entry
}

func (c *Catalog) Has(parameter string) bool {
	_, ok := c.entries[parameter]
	return ok
}
