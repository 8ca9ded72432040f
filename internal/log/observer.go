package log

import (
	"github.com/facetag/go-facetag/tracker"
	"github.com/sirupsen/logrus"
)

// EventObserver logs "person appeared" and "person left" notifications
type EventObserver struct {
	log logrus.FieldLogger
}

// NewEventObserver returns an observer writing to log
func NewEventObserver(log logrus.FieldLogger) *EventObserver {
	return &EventObserver{log: log}
}

// Notify implements tracker.Observer
func (o *EventObserver) Notify(ev tracker.Event) {

	fields := Fields{
		"face_id": ev.Identity.ID.String(),
		"label":   ev.Identity.Label,
	}

	switch ev.Kind {
	case tracker.Appeared:
		o.log.WithFields(fields).Infof("New person: %s", ev.Identity.Label)

	case tracker.Left:
		fields["dwell"] = ev.Identity.Dwell().String()
		o.log.WithFields(fields).Infof("Person left: %s", ev.Identity.Label)
	}
}
