package handlers

import (
	"net/http"

	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/store"
)

func (a *API) listTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.TasksForVehicle(r.PathValue("id")))
}

func (a *API) addTask(w http.ResponseWriter, r *http.Request) {
	var in store.TaskInput
	if !decodeBody(w, r, &in) {
		return
	}
	task, err := a.store.AddTask(r.Context(), in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (a *API) updateTask(w http.ResponseWriter, r *http.Request) {
	var patch store.TaskPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	task, err := a.store.UpdateTask(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (a *API) deleteTask(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteTask(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) completeTask(w http.ResponseWriter, r *http.Request) {
	var in store.CompletionInput
	if !decodeBody(w, r, &in) {
		return
	}
	task, err := a.store.CompleteTask(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}
