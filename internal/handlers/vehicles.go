package handlers

import (
	"net/http"

	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/store"
)

func (a *API) listVehicles(w http.ResponseWriter, r *http.Request) {
	includeArchived := r.URL.Query().Get("archived") == "true"
	writeJSON(w, http.StatusOK, a.store.Vehicles(includeArchived))
}

func (a *API) addVehicle(w http.ResponseWriter, r *http.Request) {
	var in store.VehicleInput
	if !decodeBody(w, r, &in) {
		return
	}
	v, err := a.store.AddVehicle(r.Context(), in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (a *API) getVehicle(w http.ResponseWriter, r *http.Request) {
	v, err := a.store.VehicleByID(r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (a *API) updateVehicle(w http.ResponseWriter, r *http.Request) {
	var patch store.VehiclePatch
	if !decodeBody(w, r, &patch) {
		return
	}
	v, err := a.store.UpdateVehicle(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (a *API) deleteVehicle(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteVehicle(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) archiveVehicle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Archived bool `json:"archived"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := a.store.SetVehicleArchived(r.Context(), r.PathValue("id"), req.Archived); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) setMileage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mileage float64 `json:"mileage"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	v, err := a.store.SetVehicleMileage(r.Context(), r.PathValue("id"), req.Mileage)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (a *API) upcomingTasks(w http.ResponseWriter, r *http.Request) {
	views, err := a.store.UpcomingTasks(r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (a *API) vehicleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.store.VehicleStatsFor(r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (a *API) overallStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.store.OverallStatsFor())
}

func (a *API) undo(w http.ResponseWriter, r *http.Request) {
	restored, err := a.store.Undo(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"restored": restored})
}
