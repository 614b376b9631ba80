// Standard attribute keys for xgrove logging. Using these keys keeps log
// records consistent across the library and easy to filter downstream.
// Keys follow a hierarchical naming convention ("model.name", "data.rows").

package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type.
	// Examples: "TreeRegressor", "RuleRegressor"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "booster", "metrics"
	ComponentKey = "ml.component"
)

// Data shape and characteristics.
const (
	// RowsKey is the number of training rows after subsampling.
	RowsKey = "data.rows"

	// AttributesKey is the number of candidate attributes.
	AttributesKey = "data.attributes"

	// SeedKey is the random seed for row and column subsampling.
	SeedKey = "data.seed"
)

// Structure metrics.
const (
	// LeafCountKey is the number of leaves in the grown structure.
	LeafCountKey = "model.leaf_count"

	// DepthKey is the depth bound (tree) or length bound (rule).
	DepthKey = "model.depth"

	// DurationMsKey records the execution time of an operation in
	// milliseconds.
	DurationMsKey = "perf.duration_ms"
)
