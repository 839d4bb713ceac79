package domain

// BuiltItem is a single build output reported by the engine while a target ran.
type BuiltItem struct {
	Name        string `json:"name"`
	IsDuplicate bool   `json:"duplicate"`
}

// String returns the item name, marked when the item was already reported earlier.
func (i BuiltItem) String() string {
	if i.IsDuplicate {
		return i.Name + DuplicateMarker
	}
	return i.Name
}

// TargetResult is the outcome of building exactly one target.
// It only exists for targets that built successfully and reported at least one item.
type TargetResult struct {
	Name  string      `json:"name"`
	Items []BuiltItem `json:"items"`
}

// Report is the serialized form of a full run over one project description.
type Report struct {
	Project string         `json:"project"`
	Targets []TargetResult `json:"targets"`
}
