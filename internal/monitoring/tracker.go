package monitoring

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

type Tracker struct {
	searchCounter     prometheus.Counter
	ingestCounter     prometheus.Counter
	extractionCounter prometheus.Counter
}

func NewTracker() *Tracker {
	return &Tracker{
		searchCounter: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "search_request_count",
				Help: "No of similarity searches handled by the matching handler",
			},
		),
		ingestCounter: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ingest_sofa_count",
				Help: "No of sofas ingested into the catalog",
			},
		),
		extractionCounter: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "extraction_success_count",
				Help: "No of feature records extracted and persisted",
			},
		),
	}
}

func (t *Tracker) Register() error {
	err := prometheus.Register(t.searchCounter)
	if err != nil {
		return fmt.Errorf("registering search counter, %w", err)
	}

	err = prometheus.Register(t.ingestCounter)
	if err != nil {
		return fmt.Errorf("registering ingest counter, %w", err)
	}

	err = prometheus.Register(t.extractionCounter)
	if err != nil {
		return fmt.Errorf("registering extraction counter, %w", err)
	}

	return nil
}

func (t *Tracker) OnSearch() {
	t.searchCounter.Inc()
}

func (t *Tracker) OnIngest() {
	t.ingestCounter.Inc()
}

func (t *Tracker) OnExtraction() {
	t.extractionCounter.Inc()
}
