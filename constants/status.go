package constants

// AnalysisStatus is the user-facing state of the review session.
type AnalysisStatus string

// Stable values (surfaced verbatim over the API).
const (
	StatusIdle      AnalysisStatus = "IDLE"      // no document in flight
	StatusAnalyzing AnalysisStatus = "ANALYZING" // extraction call pending
	StatusSuccess   AnalysisStatus = "SUCCESS"   // record available for review
	StatusError     AnalysisStatus = "ERROR"     // terminal failure, manual reset to retry
)

// CanStartAnalysis reports whether a new document submission is allowed from
// the given status. Only an in-flight analysis blocks re-entry.
func (s AnalysisStatus) CanStartAnalysis() bool {
	return s != StatusAnalyzing
}
