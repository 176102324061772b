package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	Logins = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hackhub_logins_total", Help: "Total successful logins"},
	)
	ApplicationsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hackhub_applications_created_total", Help: "Total applications created"},
	)
	RegistrationsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hackhub_registrations_created_total", Help: "Total registrations created (new records only)"},
	)
	ParticipantRows = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hackhub_participant_rows_total", Help: "Total rows emitted by the participant view"},
	)
)

func Register() {
	prometheus.MustRegister(Logins, ApplicationsCreated, RegistrationsCreated, ParticipantRows)
}
