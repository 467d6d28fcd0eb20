package v1

// BatchResult summarizes one reconciliation pass over a scrape batch.
type BatchResult struct {
	Updated int
	Errors  int
	Skipped int
}

// VolumeBucket is one interval of market activity: how many orders first
// appeared and how many were last seen within [Start, End).
type VolumeBucket struct {
	Start    float64
	End      float64
	Appeared int
	Departed int
}
