package cleaner

// Report counts every row the cleaning policies touched. It is handed to
// the presenter so no policy is applied silently.
type Report struct {
	DroppedNullTimestamp int `json:"dropped_null_timestamp"`
	ZeroFilled           int `json:"zero_filled"`
	ClampedNegative      int `json:"clamped_negative"`
	CollapsedDuplicates  int `json:"collapsed_duplicates"`
}

// Dirty reports whether any policy changed the data.
func (r Report) Dirty() bool {
	return r.DroppedNullTimestamp > 0 || r.ZeroFilled > 0 ||
		r.ClampedNegative > 0 || r.CollapsedDuplicates > 0
}
