package classify

import (
	"math"
	"math/rand"
	"sort"
)

// Random forest defaults: 100 trees on bootstrap samples, sqrt(d)
// feature candidates per split.
const (
	rfNumTrees    = 100
	rfMaxDepth    = 20
	rfMinLeafSize = 1
)

// RandomForest is an ensemble of CART-style decision trees trained on
// bootstrap samples. PredictProba averages the leaf class fractions over
// all trees.
type RandomForest struct {
	Trees []*treeNode

	NumTrees    int
	MaxDepth    int
	MinLeafSize int
	Seed        int64
}

// treeNode is a binary split node; leaves have nil children and carry
// the fraction of class-1 samples that reached them.
type treeNode struct {
	Feature   int
	Threshold float64
	Left      *treeNode
	Right     *treeNode

	Leaf     bool
	Positive float64
}

// NewRandomForest returns an untrained forest with the default shape,
// seeded for reproducible training.
func NewRandomForest() *RandomForest {
	return &RandomForest{
		NumTrees:    rfNumTrees,
		MaxDepth:    rfMaxDepth,
		MinLeafSize: rfMinLeafSize,
		Seed:        Seed,
	}
}

// Name implements Model.
func (rf *RandomForest) Name() string { return RandomForestName }

// Fit grows NumTrees trees, each on a bootstrap sample of the training
// set with a random sqrt(d)-sized feature subset considered per split.
func (rf *RandomForest) Fit(X [][]float64, y []int) {
	if len(X) == 0 {
		return
	}
	rnd := rand.New(rand.NewSource(rf.Seed))
	numCandidates := int(math.Sqrt(float64(len(X[0]))))
	if numCandidates < 1 {
		numCandidates = 1
	}

	rf.Trees = make([]*treeNode, rf.NumTrees)
	for t := 0; t < rf.NumTrees; t++ {
		idx := make([]int, len(X))
		for i := range idx {
			idx[i] = rnd.Intn(len(X))
		}
		rf.Trees[t] = rf.grow(X, y, idx, 0, numCandidates, rnd)
	}
}

func (rf *RandomForest) grow(X [][]float64, y []int, idx []int, depth, numCandidates int, rnd *rand.Rand) *treeNode {
	var positive float64
	for _, i := range idx {
		positive += float64(y[i])
	}
	positive /= float64(len(idx))

	if depth >= rf.MaxDepth || len(idx) <= rf.MinLeafSize || positive == 0 || positive == 1 {
		return &treeNode{Leaf: true, Positive: positive}
	}

	feature, threshold, ok := rf.bestSplit(X, y, idx, numCandidates, rnd)
	if !ok {
		return &treeNode{Leaf: true, Positive: positive}
	}

	var left, right []int
	for _, i := range idx {
		if X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &treeNode{Leaf: true, Positive: positive}
	}

	return &treeNode{
		Feature:   feature,
		Threshold: threshold,
		Left:      rf.grow(X, y, left, depth+1, numCandidates, rnd),
		Right:     rf.grow(X, y, right, depth+1, numCandidates, rnd),
	}
}

// bestSplit scans a random feature subset for the split with the lowest
// weighted gini impurity. Candidate thresholds are midpoints between the
// distinct values present in the node.
func (rf *RandomForest) bestSplit(X [][]float64, y []int, idx []int, numCandidates int, rnd *rand.Rand) (int, float64, bool) {
	bestGini := math.Inf(1)
	var bestFeature int
	var bestThreshold float64
	var found bool

	for _, feature := range rnd.Perm(len(X[0]))[:numCandidates] {
		values := make(map[float64]struct{})
		for _, i := range idx {
			values[X[i][feature]] = struct{}{}
		}
		if len(values) < 2 {
			continue
		}
		sorted := make([]float64, 0, len(values))
		for v := range values {
			sorted = append(sorted, v)
		}
		sort.Float64s(sorted)

		for k := 0; k+1 < len(sorted); k++ {
			threshold := (sorted[k] + sorted[k+1]) / 2
			gini := splitGini(X, y, idx, feature, threshold)
			if gini < bestGini {
				bestGini = gini
				bestFeature = feature
				bestThreshold = threshold
				found = true
			}
		}
	}
	return bestFeature, bestThreshold, found
}

func splitGini(X [][]float64, y []int, idx []int, feature int, threshold float64) float64 {
	var nLeft, nRight, posLeft, posRight float64
	for _, i := range idx {
		if X[i][feature] <= threshold {
			nLeft++
			posLeft += float64(y[i])
		} else {
			nRight++
			posRight += float64(y[i])
		}
	}
	total := nLeft + nRight
	return nLeft/total*gini(posLeft, nLeft) + nRight/total*gini(posRight, nRight)
}

func gini(positive, n float64) float64 {
	if n == 0 {
		return 0
	}
	p := positive / n
	return 2 * p * (1 - p)
}

// PredictProba averages the class-1 fraction of the leaf x falls into
// over all trees.
func (rf *RandomForest) PredictProba(x []float64) float64 {
	if len(rf.Trees) == 0 {
		return 0
	}
	var sum float64
	for _, tree := range rf.Trees {
		node := tree
		for !node.Leaf {
			if x[node.Feature] <= node.Threshold {
				node = node.Left
			} else {
				node = node.Right
			}
		}
		sum += node.Positive
	}
	return sum / float64(len(rf.Trees))
}
