package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"ev-range-service/internal/adapters/primary/http/web"
	"ev-range-service/internal/core/domain"
	"ev-range-service/internal/core/encoder"
	"ev-range-service/internal/core/services"
	"ev-range-service/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testInfo = domain.ModelInfo{Name: "ev-range", Version: "v1", Kind: "gradient_boosting", FeatureCount: 36}

func setupRouter(model *testutil.MockRegressor) *gin.Engine {
	gin.SetMode(gin.TestMode)

	var svc *services.PredictionService
	if model == nil {
		svc = services.NewPredictionService(nil, nil)
	} else {
		svc = services.NewPredictionService(model, nil)
	}

	h := New(svc)
	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	h.RegisterPages(r)
	r.GET("/healthz", h.Healthz)
	api := r.Group("/api/v1")
	h.RegisterRoutes(api)
	return r
}

func referenceBody() map[string]interface{} {
	return map[string]interface{}{
		"top_speed_kmh":             160,
		"battery_capacity_kWh":      55,
		"torque_nm":                 250,
		"efficiency_wh_per_km":      160,
		"acceleration_0_100_s":      8.5,
		"fast_charging_power_kw_dc": 100,
		"seats":                     5,
		"length_mm":                 4300,
		"width_mm":                  1800,
		"height_mm":                 1550,
		"drivetrain":                "AWD",
		"segment":                   "C - Medium",
		"car_body_type":             "SUV",
	}
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePrediction(t *testing.T) {
	model := testutil.NewMockRegressor(testInfo)
	r := setupRouter(model)

	model.On("Predict", mock.MatchedBy(func(values []float64) bool {
		// drivetrain_AWD, segment_C - Medium, car_body_type_SUV
		return len(values) == 36 && values[10] == 1 && values[15] == 1 && values[32] == 1
	})).Return(412.5, nil)

	w := postJSON(r, "/api/v1/predictions", referenceBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 412.5, resp["predicted_range_km"])
	assert.Equal(t, float64(69), resp["progress_percent"])
	assert.Equal(t, "Predicted Driving Range (km)", resp["label"])
	assert.Equal(t, "ev-range", resp["model_name"])
	assert.NotEmpty(t, resp["id"])
	model.AssertExpectations(t)
}

func TestCreatePrediction_DefaultsNumericFields(t *testing.T) {
	model := testutil.NewMockRegressor(testInfo)
	r := setupRouter(model)

	spec := domain.DefaultVehicleSpec()
	spec.Seats = 7
	spec.Drivetrain = domain.DrivetrainRWD
	spec.Segment = domain.SegmentNPassengerVan
	spec.BodyType = domain.BodyTypeSmallPassengerVan
	model.On("Predict", encoder.Encode(spec).Values()).Return(250.0, nil)

	w := postJSON(r, "/api/v1/predictions", map[string]interface{}{
		"seats":         7,
		"drivetrain":    "RWD",
		"segment":       "N - Passenger Van",
		"car_body_type": "Small Passenger Van",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	model.AssertExpectations(t)
}

func TestCreatePrediction_OutOfRange(t *testing.T) {
	model := testutil.NewMockRegressor(testInfo)
	r := setupRouter(model)

	body := referenceBody()
	body["top_speed_kmh"] = 301
	w := postJSON(r, "/api/v1/predictions", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	model.AssertNotCalled(t, "Predict", mock.Anything)
}

func TestCreatePrediction_InvalidSeats(t *testing.T) {
	r := setupRouter(testutil.NewMockRegressor(testInfo))

	body := referenceBody()
	body["seats"] = 3
	w := postJSON(r, "/api/v1/predictions", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePrediction_UnknownCategory(t *testing.T) {
	model := testutil.NewMockRegressor(testInfo)
	r := setupRouter(model)

	body := referenceBody()
	body["segment"] = "K - Kei"
	w := postJSON(r, "/api/v1/predictions", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown category")
	model.AssertNotCalled(t, "Predict", mock.Anything)
}

func TestCreatePrediction_SchemaMismatch(t *testing.T) {
	model := new(testutil.MockRegressor)
	model.On("FeatureNames").Return(encoder.Schema()[:30])
	r := setupRouter(model)

	w := postJSON(r, "/api/v1/predictions", referenceBody())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "does not match model schema")
}

func TestCreatePrediction_ModelNotLoaded(t *testing.T) {
	r := setupRouter(nil)

	w := postJSON(r, "/api/v1/predictions", referenceBody())
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetSchema(t *testing.T) {
	r := setupRouter(testutil.NewMockRegressor(testInfo))

	req, _ := http.NewRequest("GET", "/api/v1/schema", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp["features"], 36)
	assert.Len(t, resp["segments"], 15)
	assert.Len(t, resp["car_body_types"], 8)
}

func TestGetModel(t *testing.T) {
	r := setupRouter(testutil.NewMockRegressor(testInfo))

	req, _ := http.NewRequest("GET", "/api/v1/model", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ev-range", resp["name"])
	assert.Equal(t, float64(36), resp["feature_count"])
}

func TestHealthz(t *testing.T) {
	req, _ := http.NewRequest("GET", "/healthz", nil)

	w := httptest.NewRecorder()
	setupRouter(testutil.NewMockRegressor(testInfo)).ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	setupRouter(nil).ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func postForm(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func referenceForm() url.Values {
	form := url.Values{}
	for k, v := range referenceBody() {
		switch val := v.(type) {
		case string:
			form.Set(k, val)
		case int:
			form.Set(k, formatNumber(float64(val)))
		case float64:
			form.Set(k, formatNumber(val))
		}
	}
	return form
}

func TestShowForm(t *testing.T) {
	r := setupRouter(testutil.NewMockRegressor(testInfo))

	req, _ := http.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `name="top_speed_kmh" min="80" max="300" step="1" value="160"`)
	assert.Contains(t, body, `name="acceleration_0_100_s" min="2" max="20" step="0.1" value="8.5"`)
	assert.Contains(t, body, `<option value="FWD" selected>`)
	assert.Contains(t, body, `<option value="N - Passenger Van">`)
	assert.NotContains(t, body, "Predicted Driving Range:")
}

func TestSubmitForm(t *testing.T) {
	model := testutil.NewMockRegressor(testInfo)
	r := setupRouter(model)
	model.On("Predict", mock.Anything).Return(700.0, nil)

	w := postForm(r, referenceForm())

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Predicted Driving Range: 700.00 km")
	assert.Contains(t, body, `<progress max="100" value="100">`)
	assert.Contains(t, body, `<option value="AWD" selected>`)
	assert.Contains(t, body, `<option value="C - Medium" selected>`)
}

func TestSubmitForm_OutOfRange(t *testing.T) {
	model := testutil.NewMockRegressor(testInfo)
	r := setupRouter(model)

	form := referenceForm()
	form.Set("width_mm", "2600")
	w := postForm(r, form)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `class="error"`)
	assert.Contains(t, w.Body.String(), `value="2600"`)
	model.AssertNotCalled(t, "Predict", mock.Anything)
}

func TestSubmitForm_SchemaMismatch(t *testing.T) {
	model := new(testutil.MockRegressor)
	model.On("FeatureNames").Return([]string{"top_speed_kmh"})
	r := setupRouter(model)

	w := postForm(r, referenceForm())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Prediction failed")
	assert.NotContains(t, w.Body.String(), "Predicted Driving Range:")
}
