package regressor

// Model kinds understood by the loader.
const (
	KindGradientBoosting = "gradient_boosting"
	KindLinear           = "linear"
)

// artifact is the on-disk JSON form of an exported model.
type artifact struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Kind         string   `json:"kind"`
	FeatureNames []string `json:"feature_names"`

	// gradient_boosting
	Init         float64     `json:"init"`
	LearningRate float64     `json:"learning_rate"`
	Trees        []treeArray `json:"trees"`

	// linear
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
}

// treeArray mirrors the parallel arrays of a fitted scikit-learn tree. Node i
// is a leaf when ChildrenLeft[i] == -1.
type treeArray struct {
	ChildrenLeft  []int     `json:"children_left"`
	ChildrenRight []int     `json:"children_right"`
	Feature       []int     `json:"feature"`
	Threshold     []float64 `json:"threshold"`
	Value         []float64 `json:"value"`
}

const leaf = -1
