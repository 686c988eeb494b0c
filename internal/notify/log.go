package notify

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// LogPublisher writes due notices to the application log. It is the default
// when no broker is configured.
type LogPublisher struct{}

// Publish logs the notice.
func (LogPublisher) Publish(_ context.Context, notice DueNotice) error {
	fields := log.Fields{
		"kind":   notice.Kind,
		"ref_id": notice.RefID,
		"title":  notice.Title,
	}
	if notice.VehicleID != "" {
		fields["vehicle_id"] = notice.VehicleID
	}
	if notice.DaysUntilDue != nil {
		fields["days_until_due"] = *notice.DaysUntilDue
	}
	if notice.KmUntilDue != nil {
		fields["km_until_due"] = *notice.KmUntilDue
	}
	log.WithFields(fields).Info("maintenance due")
	return nil
}
