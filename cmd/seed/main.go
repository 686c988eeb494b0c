// Command seed fills a storage backend with a demo garage: a few vehicles
// with realistic tasks, service history and fuel logs. Useful for trying the
// API without entering data by hand.
package main

import (
	"context"
	"flag"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/models"
	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/storage"
	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/store"
)

var garage = []store.VehicleInput{
	{Make: "Toyota", Model: "Corolla", Year: 2019, Category: "car", CurrentMileage: 45230},
	{Make: "Honda", Model: "CB500F", Year: 2021, Category: "motorcycle", CurrentMileage: 12800},
	{Make: "Ford", Model: "Transit", Year: 2017, Category: "truck", CurrentMileage: 143500},
}

type taskSpec struct {
	name         string
	serviceType  string
	intervalType models.IntervalType
	interval     float64
}

var taskSpecs = []taskSpec{
	{"Oil change", "oil_change", models.IntervalMileage, 10000},
	{"Tire rotation", "tire_rotation", models.IntervalMileage, 8000},
	{"Annual inspection", "inspection", models.IntervalDate, 365},
	{"Brake check", "brake_service", models.IntervalDate, 180},
}

func main() {
	dataDir := flag.String("data-dir", "data", "data directory to seed")
	flag.Parse()

	gw, err := storage.NewFileGateway(*dataDir)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}

	st := store.New(gw)
	ctx := context.Background()
	if err := st.Load(ctx); err != nil {
		log.Fatalf("failed to load store: %v", err)
	}
	if len(st.Vehicles(true)) > 0 {
		log.Fatal("refusing to seed: storage already holds vehicles")
	}

	for _, input := range garage {
		v, err := st.AddVehicle(ctx, input)
		if err != nil {
			log.Fatalf("failed to add vehicle: %v", err)
		}
		seedVehicle(ctx, st, v)
		log.WithFields(log.Fields{"vehicle_id": v.ID, "make": v.Make, "model": v.Model}).Info("seeded vehicle")
	}

	due := time.Now().AddDate(0, 0, 14)
	if _, err := st.AddReminder(ctx, store.ReminderInput{Text: "Renew insurance", DueDate: &due}); err != nil {
		log.Fatalf("failed to add reminder: %v", err)
	}

	log.WithField("data_dir", *dataDir).Info("demo garage ready")
}

func seedVehicle(ctx context.Context, st *store.Store, v models.Vehicle) {
	for _, spec := range taskSpecs {
		in := store.TaskInput{
			VehicleID:     v.ID,
			Name:          spec.name,
			ServiceType:   spec.serviceType,
			IntervalType:  spec.intervalType,
			IntervalValue: spec.interval,
			IsRecurring:   true,
		}
		// Give some tasks history so a few come up due right away.
		if spec.intervalType == models.IntervalMileage {
			base := v.CurrentMileage - spec.interval*rand.Float64()*1.2
			if base < 0 {
				base = 0
			}
			in.LastCompletedMileage = &base
		} else {
			base := time.Now().AddDate(0, 0, -rand.Intn(int(spec.interval)+60))
			in.LastCompletedDate = &base
		}
		if _, err := st.AddTask(ctx, in); err != nil {
			log.Fatalf("failed to add task: %v", err)
		}
	}

	for i := 0; i < 3; i++ {
		monthsAgo := (i + 1) * 4
		mileage := v.CurrentMileage - float64((i+1)*7000)
		if mileage < 0 {
			mileage = 0
		}
		_, err := st.AddRecord(ctx, store.RecordInput{
			VehicleID:   v.ID,
			Title:       "Oil change",
			ServiceType: "oil_change",
			Date:        time.Now().AddDate(0, -monthsAgo, 0),
			Mileage:     mileage,
			Cost:        60 + rand.Float64()*40,
		})
		if err != nil {
			log.Fatalf("failed to add record: %v", err)
		}
	}

	for i := 0; i < 6; i++ {
		volume := 30 + rand.Float64()*20
		_, err := st.AddFuelLog(ctx, store.FuelLogInput{
			VehicleID: v.ID,
			Date:      time.Now().AddDate(0, 0, -i*12),
			FuelType:  "petrol",
			Volume:    volume,
			TotalCost: volume * (1.6 + rand.Float64()*0.3),
		})
		if err != nil {
			log.Fatalf("failed to add fuel log: %v", err)
		}
	}
}
