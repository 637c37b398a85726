package condition

// Label is the canonical condition assigned to a sample after
// harmonization. The free-text vocabulary in GEO metadata is collapsed onto
// these three values.
type Label string

const (
	Control Label = "control"
	Treated Label = "treated"
	Unknown Label = "unknown"
)
