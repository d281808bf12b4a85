package classify

import (
	"math"
	"math/rand"
)

// Neural network defaults: two ReLU hidden layers feeding a sigmoid
// output, trained with mini-batch SGD. This back end is optional and off
// by default in the trainer; it rarely beats the linear models on this
// amount of data and it cannot be exported for the extension.
var nnHiddenSizes = []int{128, 64}

const (
	nnEpochs       = 20
	nnBatchSize    = 32
	nnLearningRate = 0.05
)

// NeuralNetwork is a small feed-forward binary classifier. Weights are
// exported for gob persistence; Weights[l] has one row per neuron in
// layer l, each row holding the incoming weights followed by the bias.
type NeuralNetwork struct {
	Weights     [][][]float64
	HiddenSizes []int

	Epochs       int
	BatchSize    int
	LearningRate float64
	Seed         int64
}

// NewNeuralNetwork returns an untrained network with the default shape,
// seeded for reproducible weight init and batch order.
func NewNeuralNetwork() *NeuralNetwork {
	return &NeuralNetwork{
		HiddenSizes:  nnHiddenSizes,
		Epochs:       nnEpochs,
		BatchSize:    nnBatchSize,
		LearningRate: nnLearningRate,
		Seed:         Seed,
	}
}

// Name implements Model.
func (nn *NeuralNetwork) Name() string { return NeuralNetworkName }

func (nn *NeuralNetwork) layerSizes(numFeatures int) []int {
	sizes := []int{numFeatures}
	sizes = append(sizes, nn.HiddenSizes...)
	return append(sizes, 1)
}

// Fit trains with mini-batch SGD on the logistic loss.
func (nn *NeuralNetwork) Fit(X [][]float64, y []int) {
	if len(X) == 0 {
		return
	}
	rnd := rand.New(rand.NewSource(nn.Seed))
	sizes := nn.layerSizes(len(X[0]))

	// He-style init, scaled by the fan-in of each layer
	nn.Weights = make([][][]float64, len(sizes)-1)
	for l := 0; l < len(sizes)-1; l++ {
		scale := math.Sqrt(2 / float64(sizes[l]))
		nn.Weights[l] = make([][]float64, sizes[l+1])
		for j := range nn.Weights[l] {
			row := make([]float64, sizes[l]+1) // +1 for the bias
			for k := 0; k < sizes[l]; k++ {
				row[k] = rnd.NormFloat64() * scale
			}
			nn.Weights[l][j] = row
		}
	}

	for epoch := 0; epoch < nn.Epochs; epoch++ {
		perm := rnd.Perm(len(X))
		for start := 0; start < len(perm); start += nn.BatchSize {
			end := start + nn.BatchSize
			if end > len(perm) {
				end = len(perm)
			}
			nn.step(X, y, perm[start:end])
		}
	}
}

// step applies one SGD update on a mini batch.
func (nn *NeuralNetwork) step(X [][]float64, y []int, batch []int) {
	grads := make([][][]float64, len(nn.Weights))
	for l := range nn.Weights {
		grads[l] = make([][]float64, len(nn.Weights[l]))
		for j := range nn.Weights[l] {
			grads[l][j] = make([]float64, len(nn.Weights[l][j]))
		}
	}

	for _, i := range batch {
		activations := nn.forward(X[i])
		nn.backward(activations, float64(y[i]), grads)
	}

	scale := nn.LearningRate / float64(len(batch))
	for l := range nn.Weights {
		for j := range nn.Weights[l] {
			for k := range nn.Weights[l][j] {
				nn.Weights[l][j][k] -= scale * grads[l][j][k]
			}
		}
	}
}

// forward returns the activations of every layer, input included.
func (nn *NeuralNetwork) forward(x []float64) [][]float64 {
	activations := [][]float64{x}
	for l, layer := range nn.Weights {
		in := activations[len(activations)-1]
		out := make([]float64, len(layer))
		for j, row := range layer {
			z := row[len(row)-1] // bias
			for k, w := range row[:len(row)-1] {
				z += w * in[k]
			}
			if l == len(nn.Weights)-1 {
				out[j] = sigmoid(z)
			} else if z > 0 { // relu
				out[j] = z
			}
		}
		activations = append(activations, out)
	}
	return activations
}

// backward accumulates gradients for one example into grads.
func (nn *NeuralNetwork) backward(activations [][]float64, y float64, grads [][][]float64) {
	// output delta for sigmoid + logistic loss is just (p - y)
	delta := []float64{activations[len(activations)-1][0] - y}

	for l := len(nn.Weights) - 1; l >= 0; l-- {
		in := activations[l]
		for j, d := range delta {
			row := grads[l][j]
			for k := range in {
				row[k] += d * in[k]
			}
			row[len(row)-1] += d // bias
		}

		if l == 0 {
			break
		}
		prev := make([]float64, len(in))
		for k := range prev {
			if in[k] <= 0 { // relu gradient
				continue
			}
			var sum float64
			for j, d := range delta {
				sum += d * nn.Weights[l][j][k]
			}
			prev[k] = sum
		}
		delta = prev
	}
}

// PredictProba runs a forward pass and returns the output activation.
func (nn *NeuralNetwork) PredictProba(x []float64) float64 {
	if len(nn.Weights) == 0 {
		return 0
	}
	activations := nn.forward(x)
	return activations[len(activations)-1][0]
}
