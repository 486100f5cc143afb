package regressor

import (
	"fmt"

	"ev-range-service/internal/core/domain"
)

type node struct {
	left      int
	right     int
	feature   int
	threshold float64
	value     float64
}

type tree struct {
	nodes []node
}

func newTree(a treeArray, width int) (tree, error) {
	n := len(a.ChildrenLeft)
	if n == 0 {
		return tree{}, fmt.Errorf("%w: empty tree", domain.ErrInvalidArtifact)
	}
	if len(a.ChildrenRight) != n || len(a.Feature) != n || len(a.Threshold) != n || len(a.Value) != n {
		return tree{}, fmt.Errorf("%w: tree arrays have different lengths", domain.ErrInvalidArtifact)
	}

	nodes := make([]node, n)
	for i := 0; i < n; i++ {
		left, right := a.ChildrenLeft[i], a.ChildrenRight[i]
		nd := node{left: left, right: right, feature: a.Feature[i], threshold: a.Threshold[i], value: a.Value[i]}
		if left != leaf {
			// children are stored after their parent, which rules out cycles
			if left <= i || left >= n || right <= i || right >= n {
				return tree{}, fmt.Errorf("%w: node %d has invalid children %d/%d", domain.ErrInvalidArtifact, i, left, right)
			}
			if nd.feature < 0 || nd.feature >= width {
				return tree{}, fmt.Errorf("%w: node %d splits on feature %d of %d", domain.ErrInvalidArtifact, i, nd.feature, width)
			}
		}
		nodes[i] = nd
	}
	return tree{nodes: nodes}, nil
}

func (t tree) predict(x []float64) float64 {
	i := 0
	for {
		nd := t.nodes[i]
		if nd.left == leaf {
			return nd.value
		}
		if x[nd.feature] <= nd.threshold {
			i = nd.left
		} else {
			i = nd.right
		}
	}
}
