package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// FeatureSet absorbs the two shapes the stored payloads use for property
// features: a plain array of names ("pool", "elevator") or an object of
// boolean/count flags ({"pool": true, "parking": 2}). Whichever shape came
// in is preserved on re-marshal so stored records keep their original form.
type FeatureSet struct {
	list  []string
	flags map[string]float64
	isMap bool
}

func FeatureList(names ...string) FeatureSet {
	return FeatureSet{list: names}
}

func FeatureFlags(flags map[string]float64) FeatureSet {
	return FeatureSet{flags: flags, isMap: true}
}

func (f *FeatureSet) UnmarshalJSON(data []byte) error {
	var asList []string
	if err := json.Unmarshal(data, &asList); err == nil {
		*f = FeatureSet{list: asList}
		return nil
	}

	var asMap map[string]any
	if err := json.Unmarshal(data, &asMap); err != nil {
		return fmt.Errorf("features: neither string list nor flag object: %w", err)
	}

	flags := make(map[string]float64, len(asMap))
	for name, v := range asMap {
		switch val := v.(type) {
		case bool:
			if val {
				flags[name] = 1
			} else {
				flags[name] = 0
			}
		case float64:
			flags[name] = val
		default:
			// strings and nested values are treated as absent
			flags[name] = 0
		}
	}
	*f = FeatureSet{flags: flags, isMap: true}
	return nil
}

func (f FeatureSet) MarshalJSON() ([]byte, error) {
	if f.isMap {
		return json.Marshal(f.flags)
	}
	if f.list == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(f.list)
}

// Names normalizes both shapes into a sorted list of enabled feature
// names. Counted flags above one are rendered as "parking x2".
func (f FeatureSet) Names() []string {
	if !f.isMap {
		out := make([]string, 0, len(f.list))
		for _, n := range f.list {
			if n != "" {
				out = append(out, n)
			}
		}
		sort.Strings(out)
		return out
	}

	out := make([]string, 0, len(f.flags))
	for name, count := range f.flags {
		if count <= 0 {
			continue
		}
		if count > 1 {
			out = append(out, fmt.Sprintf("%s x%d", name, int(count)))
		} else {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func (f FeatureSet) Empty() bool {
	return len(f.Names()) == 0
}
