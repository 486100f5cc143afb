// Package encoder turns a vehicle specification into the feature vector the
// range regressor was trained on.
package encoder

import (
	"ev-range-service/internal/core/domain"
)

const (
	drivetrainPrefix = "drivetrain_"
	segmentPrefix    = "segment_"
	bodyTypePrefix   = "car_body_type_"
)

// numericColumns are the passthrough columns, in training order.
var numericColumns = []string{
	"top_speed_kmh",
	"battery_capacity_kWh",
	"torque_nm",
	"efficiency_wh_per_km",
	"acceleration_0_100_s",
	"fast_charging_power_kw_dc",
	"seats",
	"length_mm",
	"width_mm",
	"height_mm",
}

// drivetrainColumns is alphabetical, unlike the form order.
var drivetrainColumns = []domain.Drivetrain{
	domain.DrivetrainAWD, domain.DrivetrainFWD, domain.DrivetrainRWD,
}

var schema = buildSchema()

func buildSchema() []string {
	names := make([]string, 0, len(numericColumns)+len(drivetrainColumns)+len(domain.Segments)+len(domain.BodyTypeColumns))
	names = append(names, numericColumns...)
	for _, d := range drivetrainColumns {
		names = append(names, drivetrainPrefix+string(d))
	}
	for _, s := range domain.Segments {
		names = append(names, segmentPrefix+string(s))
	}
	for _, b := range domain.BodyTypeColumns {
		names = append(names, bodyTypePrefix+string(b))
	}
	return names
}

// Schema returns the ordered feature names produced by Encode.
func Schema() []string {
	cp := make([]string, len(schema))
	copy(cp, schema)
	return cp
}

// Width is the number of features produced by Encode.
func Width() int { return len(schema) }

// Encode builds the feature vector for spec. It has no side effects.
func Encode(spec domain.VehicleSpec) domain.FeatureVector {
	features := make([]domain.Feature, 0, len(schema))

	numeric := []float64{
		float64(spec.TopSpeedKmh),
		float64(spec.BatteryCapacityKWh),
		float64(spec.TorqueNm),
		float64(spec.EfficiencyWhPerKm),
		spec.Acceleration0To100S,
		float64(spec.FastChargingPowerKwDC),
		float64(spec.Seats),
		float64(spec.LengthMm),
		float64(spec.WidthMm),
		float64(spec.HeightMm),
	}
	for i, name := range numericColumns {
		features = append(features, domain.Feature{Name: name, Value: numeric[i]})
	}

	for _, d := range drivetrainColumns {
		features = append(features, domain.Feature{Name: drivetrainPrefix + string(d), Value: indicator(spec.Drivetrain == d)})
	}
	for _, s := range domain.Segments {
		features = append(features, domain.Feature{Name: segmentPrefix + string(s), Value: indicator(spec.Segment == s)})
	}
	for _, b := range domain.BodyTypeColumns {
		features = append(features, domain.Feature{Name: bodyTypePrefix + string(b), Value: indicator(spec.BodyType == b)})
	}

	return domain.NewFeatureVector(features)
}

func indicator(set bool) float64 {
	if set {
		return 1
	}
	return 0
}
