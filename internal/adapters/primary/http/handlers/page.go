package handlers

import (
	"net/http"
	"strconv"

	"ev-range-service/internal/adapters/primary/http/dto"
	"ev-range-service/internal/adapters/primary/http/middleware"
	"ev-range-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const pageTemplate = "index.html"

type numericField struct {
	Name  string
	Label string
	Min   string
	Max   string
	Step  string
	Value string
}

type option struct {
	Value    string
	Selected bool
}

type selectField struct {
	Name    string
	Label   string
	Options []option
}

type pageData struct {
	LeadingFields  []numericField
	Seats          selectField
	TrailingFields []numericField
	Selects        []selectField
	Result         *dto.PredictionResponse
	Error          string
}

type fieldLabel struct {
	name  string
	label string
}

// Sidebar order; seats sits between the two numeric groups.
var (
	leadingFields = []fieldLabel{
		{"top_speed_kmh", "Top Speed (km/h)"},
		{"battery_capacity_kWh", "Battery Capacity (kWh)"},
		{"torque_nm", "Torque (Nm)"},
		{"efficiency_wh_per_km", "Efficiency (Wh/km)"},
		{"acceleration_0_100_s", "0–100 km/h (seconds)"},
		{"fast_charging_power_kw_dc", "Fast Charging Power (kW)"},
	}
	trailingFields = []fieldLabel{
		{"length_mm", "Length (mm)"},
		{"width_mm", "Width (mm)"},
		{"height_mm", "Height (mm)"},
	}
)

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// defaultFormValues returns the values the form opens with, keyed by input name.
func defaultFormValues() map[string]string {
	values := make(map[string]string, len(domain.InputRanges)+4)
	for name, r := range domain.InputRanges {
		values[name] = formatNumber(r.Default)
	}
	spec := domain.DefaultVehicleSpec()
	values["seats"] = strconv.Itoa(int(spec.Seats))
	values["drivetrain"] = string(spec.Drivetrain)
	values["segment"] = string(spec.Segment)
	values["car_body_type"] = string(spec.BodyType)
	return values
}

// submittedFormValues overlays the posted values on the defaults so the form
// re-renders with what the user entered.
func submittedFormValues(c *gin.Context) map[string]string {
	values := defaultFormValues()
	for name := range values {
		if v, ok := c.GetPostForm(name); ok && v != "" {
			values[name] = v
		}
	}
	return values
}

func numericFields(group []fieldLabel, values map[string]string) []numericField {
	fields := make([]numericField, 0, len(group))
	for _, l := range group {
		r := domain.InputRanges[l.name]
		fields = append(fields, numericField{
			Name:  l.name,
			Label: l.label,
			Min:   formatNumber(r.Min),
			Max:   formatNumber(r.Max),
			Step:  formatNumber(r.Step),
			Value: values[l.name],
		})
	}
	return fields
}

func newSelect(name, label string, choices []string, current string) selectField {
	sf := selectField{Name: name, Label: label, Options: make([]option, 0, len(choices))}
	for _, v := range choices {
		sf.Options = append(sf.Options, option{Value: v, Selected: v == current})
	}
	return sf
}

func labels[T ~string](choices []T) []string {
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = string(c)
	}
	return out
}

func seatLabels() []string {
	out := make([]string, len(domain.SeatOptions))
	for i, s := range domain.SeatOptions {
		out[i] = strconv.Itoa(int(s))
	}
	return out
}

func newPageData(values map[string]string) pageData {
	return pageData{
		LeadingFields:  numericFields(leadingFields, values),
		Seats:          newSelect("seats", "Seats", seatLabels(), values["seats"]),
		TrailingFields: numericFields(trailingFields, values),
		Selects: []selectField{
			newSelect("drivetrain", "Drivetrain", labels(domain.Drivetrains), values["drivetrain"]),
			newSelect("segment", "Segment", labels(domain.Segments), values["segment"]),
			newSelect("car_body_type", "Car Body Type", labels(domain.BodyTypes), values["car_body_type"]),
		},
	}
}

func (h *Handler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, pageTemplate, newPageData(defaultFormValues()))
}

func (h *Handler) SubmitForm(c *gin.Context) {
	page := newPageData(submittedFormValues(c))

	var req dto.PredictionRequest
	if err := c.ShouldBind(&req); err != nil {
		page.Error = err.Error()
		c.HTML(http.StatusBadRequest, pageTemplate, page)
		return
	}

	spec, err := dto.ToVehicleSpec(req)
	if err != nil {
		page.Error = err.Error()
		c.HTML(statusFor(err), pageTemplate, page)
		return
	}

	prediction, err := h.predictionSvc.Predict(c.Request.Context(), spec)
	if err != nil {
		log.WithError(err).WithField("request_id", c.GetString(middleware.RequestIDKey)).Error("predict range failed")
		page.Error = "Prediction failed: " + err.Error()
		c.HTML(statusFor(err), pageTemplate, page)
		return
	}

	resp := dto.ToPredictionResponse(prediction)
	page.Result = &resp
	c.HTML(http.StatusOK, pageTemplate, page)
}
