package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/auth"
	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/models"
	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/storage"
	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/store"
)

func newTestMux(t *testing.T) (*http.ServeMux, *store.Store) {
	t.Helper()
	s := store.New(storage.NewMemoryGateway())
	require.NoError(t, s.Load(context.Background()))

	authService, err := auth.NewService("test-secret", time.Hour, "garage", "testpassword123")
	require.NoError(t, err)

	mux := http.NewServeMux()
	NewAPI(s, authService).Routes(mux)
	return mux, s
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestVehicleLifecycle(t *testing.T) {
	mux, _ := newTestMux(t)

	w := doJSON(t, mux, "POST", "/api/vehicles", store.VehicleInput{
		Make:           "Toyota",
		Model:          "Corolla",
		Year:           2019,
		CurrentMileage: 45000,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var v models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	assert.NotEmpty(t, v.ID)

	w = doJSON(t, mux, "GET", "/api/vehicles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)

	w = doJSON(t, mux, "DELETE", "/api/vehicles/"+v.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, mux, "GET", "/api/vehicles/"+v.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Undo brings the vehicle back.
	w = doJSON(t, mux, "POST", "/api/undo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var undoResp map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &undoResp))
	assert.True(t, undoResp["restored"])

	w = doJSON(t, mux, "GET", "/api/vehicles/"+v.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAddVehicle_ValidationMapsTo400(t *testing.T) {
	mux, _ := newTestMux(t)

	w := doJSON(t, mux, "POST", "/api/vehicles", store.VehicleInput{Model: "Corolla", Year: 2019})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, mux, "POST", "/api/vehicles", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpcomingEndpoint(t *testing.T) {
	mux, s := newTestMux(t)
	ctx := context.Background()

	v, err := s.AddVehicle(ctx, store.VehicleInput{Make: "Honda", Model: "Civic", Year: 2021, CurrentMileage: 45000})
	require.NoError(t, err)
	base := 29000.0
	_, err = s.AddTask(ctx, store.TaskInput{
		VehicleID:            v.ID,
		Name:                 "Oil change",
		IntervalType:         models.IntervalMileage,
		IntervalValue:        15000,
		IsRecurring:          true,
		LastCompletedMileage: &base,
	})
	require.NoError(t, err)

	w := doJSON(t, mux, "GET", fmt.Sprintf("/api/vehicles/%s/upcoming", v.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var views []store.UpcomingTask
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.True(t, views[0].IsDue)
	require.NotNil(t, views[0].KmUntilDue)
	assert.Equal(t, -1000.0, *views[0].KmUntilDue)
}

func TestCompleteTaskEndpoint(t *testing.T) {
	mux, s := newTestMux(t)
	ctx := context.Background()

	v, err := s.AddVehicle(ctx, store.VehicleInput{Make: "Honda", Model: "Civic", Year: 2021, CurrentMileage: 40000})
	require.NoError(t, err)
	task, err := s.AddTask(ctx, store.TaskInput{
		VehicleID:     v.ID,
		Name:          "Oil change",
		IntervalType:  models.IntervalMileage,
		IntervalValue: 10000,
		IsRecurring:   true,
	})
	require.NoError(t, err)

	w := doJSON(t, mux, "POST", "/api/tasks/"+task.ID+"/complete", store.CompletionInput{Mileage: 45000, Cost: 80})
	require.Equal(t, http.StatusOK, w.Code)

	var done models.MaintenanceTask
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &done))
	require.NotNil(t, done.NextDueMileage)
	assert.Equal(t, 55000.0, *done.NextDueMileage)
}

func TestLogin(t *testing.T) {
	mux, _ := newTestMux(t)

	w := doJSON(t, mux, "POST", "/api/auth/login", models.LoginRequest{Username: "garage", Password: "testpassword123"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	w = doJSON(t, mux, "POST", "/api/auth/login", models.LoginRequest{Username: "garage", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealth(t *testing.T) {
	mux, _ := newTestMux(t)
	w := doJSON(t, mux, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
