package handlers

import (
	"net/http"

	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/store"
)

func (a *API) listReminders(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.store.Reminders())
}

func (a *API) addReminder(w http.ResponseWriter, r *http.Request) {
	var in store.ReminderInput
	if !decodeBody(w, r, &in) {
		return
	}
	q, err := a.store.AddReminder(r.Context(), in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, q)
}

func (a *API) setReminderDone(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Done bool `json:"done"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	q, err := a.store.SetReminderDone(r.Context(), r.PathValue("id"), req.Done)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (a *API) deleteReminder(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteReminder(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
