package neato

import "go-home.io/x/neato/plugins/helpers"

// Robot describes a single physical robot known to the vendor cloud.
type Robot struct {
	Serial string   `json:"serial"`
	Name   string   `json:"name"`
	Traits []string `json:"traits"`
}

// HasTrait checks whether robot reports a capability.
func (r *Robot) HasTrait(trait string) bool {
	return helpers.SliceContainsString(r.Traits, trait)
}

// MapEntry describes a single cleaning map.
type MapEntry struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	GeneratedAt string `json:"generated_at"`
}

// MapData contains known maps of a robot, latest first.
type MapData struct {
	Maps []*MapEntry `json:"maps"`
}

// Latest returns current map or nil.
func (m *MapData) Latest() *MapEntry {
	if nil == m || 0 == len(m.Maps) {
		return nil
	}

	return m.Maps[0]
}
