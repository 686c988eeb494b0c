package handlers

import (
	"net/http"

	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/store"
)

func (a *API) listFuelLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.FuelLogsForVehicle(r.PathValue("id")))
}

func (a *API) addFuelLog(w http.ResponseWriter, r *http.Request) {
	var in store.FuelLogInput
	if !decodeBody(w, r, &in) {
		return
	}
	f, err := a.store.AddFuelLog(r.Context(), in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

func (a *API) deleteFuelLog(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteFuelLog(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
