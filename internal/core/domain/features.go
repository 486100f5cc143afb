package domain

// Feature is a single named column of a FeatureVector.
type Feature struct {
	Name  string
	Value float64
}

// FeatureVector is the ordered numeric input of the regressor. The order of
// its features must match the columns the model was trained on.
type FeatureVector struct {
	features []Feature
}

func NewFeatureVector(features []Feature) FeatureVector {
	cp := make([]Feature, len(features))
	copy(cp, features)
	return FeatureVector{features: cp}
}

func (v FeatureVector) Len() int { return len(v.features) }

func (v FeatureVector) Names() []string {
	names := make([]string, len(v.features))
	for i, f := range v.features {
		names[i] = f.Name
	}
	return names
}

func (v FeatureVector) Values() []float64 {
	values := make([]float64, len(v.features))
	for i, f := range v.features {
		values[i] = f.Value
	}
	return values
}

// Get returns the value of the named feature and whether it is present.
func (v FeatureVector) Get(name string) (float64, bool) {
	for _, f := range v.features {
		if f.Name == name {
			return f.Value, true
		}
	}
	return 0, false
}

// Features returns a copy of the ordered features.
func (v FeatureVector) Features() []Feature {
	cp := make([]Feature, len(v.features))
	copy(cp, v.features)
	return cp
}
