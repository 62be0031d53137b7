// Package widgets is a documentation fixture modelled on a small layer
// library.
package widgets

// Activation names a layer activation function.
type Activation string

// Dense is a regular densely-connected layer.
//
// # Arguments
//     units: Dimensionality of the output space.
//     activation: Activation function to use.
//
// # Example
//     layer := widgets.NewDense(32, "relu")
type Dense struct {
	// Units is the dimensionality of the output space.
	Units int

	// Activation is applied to the layer output.
	Activation Activation
}

// NewDense constructs a densely-connected layer.
func NewDense(units int, activation Activation) *Dense {
	return &Dense{Units: units, Activation: activation}
}

// Compile configures the layer for training.
//
// # Arguments
//     optimizer: Name of the optimizer to apply.
//     loss: Name of the objective function.
//     metrics: Metrics evaluated during training and testing.
//     lossWeights: Scalar coefficients weighting the loss contributions.
//     runEagerly: Whether to run eagerly instead of building a graph.
//     stepsPerExecution: Batches to run per single execution call.
//
// # Raises
//     ValueError: For invalid optimizer, loss or metrics arguments.
func (d *Dense) Compile(optimizer string, loss string, metrics []string, lossWeights []float64, runEagerly bool, stepsPerExecution int) error {
	_ = optimizer
	_ = loss
	_ = metrics
	_ = lossWeights
	_ = runEagerly
	_ = stepsPerExecution
	return nil
}
