package handlers

import (
	"net/http"

	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/store"
)

func (a *API) listRecords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.RecordsForVehicle(r.PathValue("id")))
}

func (a *API) addRecord(w http.ResponseWriter, r *http.Request) {
	var in store.RecordInput
	if !decodeBody(w, r, &in) {
		return
	}
	rec, err := a.store.AddRecord(r.Context(), in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (a *API) getRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := a.store.RecordByID(r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (a *API) deleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteRecord(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
