package domain

import (
	"fmt"
	"strconv"
)

type Drivetrain string

const (
	DrivetrainFWD Drivetrain = "FWD"
	DrivetrainRWD Drivetrain = "RWD"
	DrivetrainAWD Drivetrain = "AWD"
)

// Drivetrains lists the drivetrain options in form display order.
var Drivetrains = []Drivetrain{DrivetrainFWD, DrivetrainRWD, DrivetrainAWD}

func ParseDrivetrain(s string) (Drivetrain, error) {
	for _, d := range Drivetrains {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("drivetrain %q: %w", s, ErrUnknownCategory)
}

type Segment string

const (
	SegmentAMini         Segment = "A - Mini"
	SegmentBCompact      Segment = "B - Compact"
	SegmentCMedium       Segment = "C - Medium"
	SegmentDLarge        Segment = "D - Large"
	SegmentEExecutive    Segment = "E - Executive"
	SegmentFLuxury       Segment = "F - Luxury"
	SegmentGSports       Segment = "G - Sports"
	SegmentILuxury       Segment = "I - Luxury"
	SegmentJAMini        Segment = "JA - Mini"
	SegmentJBCompact     Segment = "JB - Compact"
	SegmentJCMedium      Segment = "JC - Medium"
	SegmentJDLarge       Segment = "JD - Large"
	SegmentJEExecutive   Segment = "JE - Executive"
	SegmentJFLuxury      Segment = "JF - Luxury"
	SegmentNPassengerVan Segment = "N - Passenger Van"
)

// Segments lists the market segments. The encoder emits segment indicators
// in this order.
var Segments = []Segment{
	SegmentAMini, SegmentBCompact, SegmentCMedium, SegmentDLarge,
	SegmentEExecutive, SegmentFLuxury, SegmentGSports,
	SegmentILuxury, SegmentJAMini, SegmentJBCompact,
	SegmentJCMedium, SegmentJDLarge, SegmentJEExecutive,
	SegmentJFLuxury, SegmentNPassengerVan,
}

func ParseSegment(s string) (Segment, error) {
	for _, seg := range Segments {
		if string(seg) == s {
			return seg, nil
		}
	}
	return "", fmt.Errorf("segment %q: %w", s, ErrUnknownCategory)
}

type BodyType string

const (
	BodyTypeHatchback         BodyType = "Hatchback"
	BodyTypeSedan             BodyType = "Sedan"
	BodyTypeSUV               BodyType = "SUV"
	BodyTypeCoupe             BodyType = "Coupe"
	BodyTypeCabriolet         BodyType = "Cabriolet"
	BodyTypeLiftbackSedan     BodyType = "Liftback Sedan"
	BodyTypeStationEstate     BodyType = "Station/Estate"
	BodyTypeSmallPassengerVan BodyType = "Small Passenger Van"
)

// BodyTypes lists the body types in form display order.
var BodyTypes = []BodyType{
	BodyTypeHatchback, BodyTypeSedan, BodyTypeSUV, BodyTypeCoupe,
	BodyTypeCabriolet, BodyTypeLiftbackSedan,
	BodyTypeStationEstate, BodyTypeSmallPassengerVan,
}

// BodyTypeColumns is the order of the body type indicators in the training
// frame, which differs from the display order.
var BodyTypeColumns = []BodyType{
	BodyTypeCabriolet, BodyTypeCoupe, BodyTypeHatchback, BodyTypeLiftbackSedan,
	BodyTypeSUV, BodyTypeSedan, BodyTypeSmallPassengerVan, BodyTypeStationEstate,
}

func ParseBodyType(s string) (BodyType, error) {
	for _, b := range BodyTypes {
		if string(b) == s {
			return b, nil
		}
	}
	return "", fmt.Errorf("car body type %q: %w", s, ErrUnknownCategory)
}

// Seats is an enumerated seat count. The model consumes it as a number.
type Seats int

var SeatOptions = []Seats{2, 4, 5, 6, 7}

func ParseSeats(n int) (Seats, error) {
	for _, s := range SeatOptions {
		if int(s) == n {
			return s, nil
		}
	}
	return 0, fmt.Errorf("seats %s: %w", strconv.Itoa(n), ErrUnknownCategory)
}

// VehicleSpec is the set of attributes a prediction is made from. Values are
// built once per request and never modified.
type VehicleSpec struct {
	TopSpeedKmh           int
	BatteryCapacityKWh    int
	TorqueNm              int
	EfficiencyWhPerKm     int
	Acceleration0To100S   float64
	FastChargingPowerKwDC int
	Seats                 Seats
	LengthMm              int
	WidthMm               int
	HeightMm              int
	Drivetrain            Drivetrain
	Segment               Segment
	BodyType              BodyType
}

// NumericRange bounds a form input.
type NumericRange struct {
	Min     float64
	Max     float64
	Default float64
	Step    float64
}

// InputRanges holds the bounds and defaults of the numeric form inputs, keyed
// by feature name.
var InputRanges = map[string]NumericRange{
	"top_speed_kmh":             {Min: 80, Max: 300, Default: 160, Step: 1},
	"battery_capacity_kWh":      {Min: 20, Max: 150, Default: 55, Step: 1},
	"torque_nm":                 {Min: 100, Max: 1000, Default: 250, Step: 1},
	"efficiency_wh_per_km":      {Min: 100, Max: 300, Default: 160, Step: 1},
	"acceleration_0_100_s":      {Min: 2.0, Max: 20.0, Default: 8.5, Step: 0.1},
	"fast_charging_power_kw_dc": {Min: 20, Max: 350, Default: 100, Step: 1},
	"length_mm":                 {Min: 3000, Max: 5500, Default: 4300, Step: 1},
	"width_mm":                  {Min: 1500, Max: 2500, Default: 1800, Step: 1},
	"height_mm":                 {Min: 1200, Max: 2200, Default: 1550, Step: 1},
}

// DefaultVehicleSpec returns the spec the form opens with.
func DefaultVehicleSpec() VehicleSpec {
	return VehicleSpec{
		TopSpeedKmh:           160,
		BatteryCapacityKWh:    55,
		TorqueNm:              250,
		EfficiencyWhPerKm:     160,
		Acceleration0To100S:   8.5,
		FastChargingPowerKwDC: 100,
		Seats:                 SeatOptions[0],
		LengthMm:              4300,
		WidthMm:               1800,
		HeightMm:              1550,
		Drivetrain:            Drivetrains[0],
		Segment:               Segments[0],
		BodyType:              BodyTypes[0],
	}
}
