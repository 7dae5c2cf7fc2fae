// Package metrics exposes observability hooks for the derivation pipeline and
// the PDF artifact cache.
package metrics

import "time"

// LookupState is the cache state observed when a PDF is requested
type LookupState string

const (
	LookupAbsent LookupState = "absent"
	LookupStale  LookupState = "stale"
	LookupFresh  LookupState = "fresh"
)

// Stage names a pipeline transformation
type Stage string

const (
	StageSkirmish Stage = "skirmish"
	StageUnits    Stage = "units"
	StagePackages Stage = "packages"
)

// Recorder defines observability hooks. Implementations may forward to
// Prometheus; the NoopRecorder is used when metrics are disabled.
type Recorder interface {
	IncArtifactLookup(state LookupState)
	ObserveRender(d time.Duration, success bool)
	IncRenderShared()
	IncArtifactStoreFailure()
	ObserveDerivation(stage Stage, d time.Duration, success bool)
	IncSkippedRecords(stage Stage, kind string, n int)
}

// NoopRecorder is a Recorder that does nothing
type NoopRecorder struct{}

func (NoopRecorder) IncArtifactLookup(LookupState)                {}
func (NoopRecorder) ObserveRender(time.Duration, bool)            {}
func (NoopRecorder) IncRenderShared()                             {}
func (NoopRecorder) IncArtifactStoreFailure()                     {}
func (NoopRecorder) ObserveDerivation(Stage, time.Duration, bool) {}
func (NoopRecorder) IncSkippedRecords(Stage, string, int)         {}

func resultLabel(success bool) string {
	if success {
		return "success"
	}
	return "failed"
}
