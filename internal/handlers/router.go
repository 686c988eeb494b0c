package handlers

import (
	"net/http"

	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/auth"
	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/store"
)

// API bundles the handlers serving the domain store.
type API struct {
	store       *store.Store
	authService *auth.Service
}

// NewAPI creates the API handler set.
func NewAPI(s *store.Store, authService *auth.Service) *API {
	return &API{store: s, authService: authService}
}

// Routes registers every endpoint on the mux.
func (a *API) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", a.health)
	mux.HandleFunc("POST /api/auth/login", a.login)

	mux.HandleFunc("GET /api/vehicles", a.listVehicles)
	mux.HandleFunc("POST /api/vehicles", a.addVehicle)
	mux.HandleFunc("GET /api/vehicles/{id}", a.getVehicle)
	mux.HandleFunc("PUT /api/vehicles/{id}", a.updateVehicle)
	mux.HandleFunc("DELETE /api/vehicles/{id}", a.deleteVehicle)
	mux.HandleFunc("POST /api/vehicles/{id}/archive", a.archiveVehicle)
	mux.HandleFunc("POST /api/vehicles/{id}/mileage", a.setMileage)
	mux.HandleFunc("GET /api/vehicles/{id}/upcoming", a.upcomingTasks)
	mux.HandleFunc("GET /api/vehicles/{id}/stats", a.vehicleStats)
	mux.HandleFunc("GET /api/vehicles/{id}/records", a.listRecords)
	mux.HandleFunc("GET /api/vehicles/{id}/fuellogs", a.listFuelLogs)
	mux.HandleFunc("GET /api/vehicles/{id}/tasks", a.listTasks)

	mux.HandleFunc("POST /api/tasks", a.addTask)
	mux.HandleFunc("PUT /api/tasks/{id}", a.updateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", a.deleteTask)
	mux.HandleFunc("POST /api/tasks/{id}/complete", a.completeTask)

	mux.HandleFunc("POST /api/records", a.addRecord)
	mux.HandleFunc("GET /api/records/{id}", a.getRecord)
	mux.HandleFunc("DELETE /api/records/{id}", a.deleteRecord)

	mux.HandleFunc("POST /api/fuellogs", a.addFuelLog)
	mux.HandleFunc("DELETE /api/fuellogs/{id}", a.deleteFuelLog)

	mux.HandleFunc("GET /api/reminders", a.listReminders)
	mux.HandleFunc("POST /api/reminders", a.addReminder)
	mux.HandleFunc("POST /api/reminders/{id}/done", a.setReminderDone)
	mux.HandleFunc("DELETE /api/reminders/{id}", a.deleteReminder)

	mux.HandleFunc("POST /api/undo", a.undo)
	mux.HandleFunc("GET /api/stats", a.overallStats)
}

func (a *API) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
