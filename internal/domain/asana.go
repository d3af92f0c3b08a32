package domain

import "fmt"

// Asana is one catalog item: a unique name, the utterances used as semantic
// comparison anchors, and the instructional content that is carried through
// to report generation without being interpreted by the matching core.
// Asanas are immutable after catalog load.
type Asana struct {
	Name       string       `yaml:"name"`
	Utterances []string     `yaml:"utterances"`
	Content    AsanaContent `yaml:"content"`
}

// AsanaContent is the opaque instructional payload attached to an asana.
type AsanaContent struct {
	HowToDo   string `yaml:"how_to_do"`
	Frequency string `yaml:"frequency"`
	Timing    string `yaml:"timing"`
	Dietary   string `yaml:"dietary"`
	Lifestyle string `yaml:"lifestyle"`
	Benefits  string `yaml:"benefits"`
}

// Catalog is the fixed, ordered list of asanas loaded once at startup.
// The order is significant: it defines the cache scan order and therefore
// the deterministic tie-break between equally scored candidates.
type Catalog []Asana

// Validate checks the structural invariants of the catalog: non-empty,
// unique names, and at least one utterance per asana.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return NewValidationErr("catalog is empty")
	}

	seen := make(map[string]struct{}, len(c))
	for _, asana := range c {
		if asana.Name == "" {
			return NewValidationErr("catalog contains an asana without a name")
		}
		if _, exists := seen[asana.Name]; exists {
			return NewValidationErr(fmt.Sprintf("duplicate asana name: %s", asana.Name))
		}
		seen[asana.Name] = struct{}{}

		if len(asana.Utterances) == 0 {
			return NewValidationErr(fmt.Sprintf("asana %s has no utterances", asana.Name))
		}
		for _, utterance := range asana.Utterances {
			if utterance == "" {
				return NewValidationErr(fmt.Sprintf("asana %s has an empty utterance", asana.Name))
			}
		}
	}
	return nil
}

// TotalUtterances returns the number of comparison anchors across the catalog.
func (c Catalog) TotalUtterances() int {
	total := 0
	for _, asana := range c {
		total += len(asana.Utterances)
	}
	return total
}
