package dto

import (
	"errors"

	"ev-range-service/internal/core/domain"
	"ev-range-service/internal/core/encoder"
)

// PredictionRequest is bound from both the HTML form and the JSON API.
// Numeric fields left out take the form defaults; categorical fields are
// required and must come from the closed selection lists.
type PredictionRequest struct {
	TopSpeedKmh           *int     `json:"top_speed_kmh" form:"top_speed_kmh" binding:"omitempty,min=80,max=300"`
	BatteryCapacityKWh    *int     `json:"battery_capacity_kWh" form:"battery_capacity_kWh" binding:"omitempty,min=20,max=150"`
	TorqueNm              *int     `json:"torque_nm" form:"torque_nm" binding:"omitempty,min=100,max=1000"`
	EfficiencyWhPerKm     *int     `json:"efficiency_wh_per_km" form:"efficiency_wh_per_km" binding:"omitempty,min=100,max=300"`
	Acceleration0To100S   *float64 `json:"acceleration_0_100_s" form:"acceleration_0_100_s" binding:"omitempty,min=2,max=20"`
	FastChargingPowerKwDC *int     `json:"fast_charging_power_kw_dc" form:"fast_charging_power_kw_dc" binding:"omitempty,min=20,max=350"`
	Seats                 *int     `json:"seats" form:"seats" binding:"required,oneof=2 4 5 6 7"`
	LengthMm              *int     `json:"length_mm" form:"length_mm" binding:"omitempty,min=3000,max=5500"`
	WidthMm               *int     `json:"width_mm" form:"width_mm" binding:"omitempty,min=1500,max=2500"`
	HeightMm              *int     `json:"height_mm" form:"height_mm" binding:"omitempty,min=1200,max=2200"`
	Drivetrain            string   `json:"drivetrain" form:"drivetrain" binding:"required"`
	Segment               string   `json:"segment" form:"segment" binding:"required"`
	CarBodyType           string   `json:"car_body_type" form:"car_body_type" binding:"required"`
}

// ToVehicleSpec applies defaults and parses the categorical fields.
func ToVehicleSpec(req PredictionRequest) (domain.VehicleSpec, error) {
	spec := domain.DefaultVehicleSpec()

	setInt(&spec.TopSpeedKmh, req.TopSpeedKmh)
	setInt(&spec.BatteryCapacityKWh, req.BatteryCapacityKWh)
	setInt(&spec.TorqueNm, req.TorqueNm)
	setInt(&spec.EfficiencyWhPerKm, req.EfficiencyWhPerKm)
	if req.Acceleration0To100S != nil {
		spec.Acceleration0To100S = *req.Acceleration0To100S
	}
	setInt(&spec.FastChargingPowerKwDC, req.FastChargingPowerKwDC)
	setInt(&spec.LengthMm, req.LengthMm)
	setInt(&spec.WidthMm, req.WidthMm)
	setInt(&spec.HeightMm, req.HeightMm)

	var errs []error
	var err error
	if req.Seats == nil {
		errs = append(errs, domain.ErrInvalidInput)
	} else if spec.Seats, err = domain.ParseSeats(*req.Seats); err != nil {
		errs = append(errs, err)
	}
	if spec.Drivetrain, err = domain.ParseDrivetrain(req.Drivetrain); err != nil {
		errs = append(errs, err)
	}
	if spec.Segment, err = domain.ParseSegment(req.Segment); err != nil {
		errs = append(errs, err)
	}
	if spec.BodyType, err = domain.ParseBodyType(req.CarBodyType); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return domain.VehicleSpec{}, errors.Join(errs...)
	}

	return spec, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// PredictionLabel is the caption of the predicted value.
const PredictionLabel = "Predicted Driving Range (km)"

type PredictionResponse struct {
	ID               string  `json:"id"`
	Label            string  `json:"label"`
	PredictedRangeKm float64 `json:"predicted_range_km"`
	ProgressPercent  int     `json:"progress_percent"`
	ModelName        string  `json:"model_name"`
	ModelVersion     string  `json:"model_version"`
}

func ToPredictionResponse(p *domain.Prediction) PredictionResponse {
	return PredictionResponse{
		ID:               p.ID,
		Label:            PredictionLabel,
		PredictedRangeKm: p.RangeKm,
		ProgressPercent:  p.ProgressPercent,
		ModelName:        p.ModelName,
		ModelVersion:     p.ModelVersion,
	}
}

type ModelInfoResponse struct {
	Name         string `json:"name"`
	Version      string `json:"version"`
	Kind         string `json:"kind"`
	Path         string `json:"path"`
	FeatureCount int    `json:"feature_count"`
}

func ToModelInfoResponse(info domain.ModelInfo) ModelInfoResponse {
	return ModelInfoResponse{
		Name:         info.Name,
		Version:      info.Version,
		Kind:         info.Kind,
		Path:         info.Path,
		FeatureCount: info.FeatureCount,
	}
}

type RangeDTO struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
}

type SchemaResponse struct {
	Features    []string            `json:"features"`
	Ranges      map[string]RangeDTO `json:"ranges"`
	Seats       []int               `json:"seats"`
	Drivetrains []string            `json:"drivetrains"`
	Segments    []string            `json:"segments"`
	BodyTypes   []string            `json:"car_body_types"`
}

func NewSchemaResponse() SchemaResponse {
	resp := SchemaResponse{
		Features: encoder.Schema(),
		Ranges:   make(map[string]RangeDTO, len(domain.InputRanges)),
	}
	for name, r := range domain.InputRanges {
		resp.Ranges[name] = RangeDTO{Min: r.Min, Max: r.Max, Default: r.Default}
	}
	for _, s := range domain.SeatOptions {
		resp.Seats = append(resp.Seats, int(s))
	}
	for _, d := range domain.Drivetrains {
		resp.Drivetrains = append(resp.Drivetrains, string(d))
	}
	for _, s := range domain.Segments {
		resp.Segments = append(resp.Segments, string(s))
	}
	for _, b := range domain.BodyTypes {
		resp.BodyTypes = append(resp.BodyTypes, string(b))
	}
	return resp
}
