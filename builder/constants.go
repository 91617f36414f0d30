// SPDX-License-Identifier: MIT

package builder

// Constructor names used as error context.
const (
	MethodRandomLP = "RandomLP"
	MethodSOCNorm  = "SOCNorm"
	MethodAllCones = "AllCones"
)

// Minimum sizes.
const (
	// MinLPRows is the smallest row count of RandomLP.
	MinLPRows = 1
	// MinLPCols is the smallest column count of RandomLP.
	MinLPCols = 1
	// MinNormDim is the smallest n of SOCNorm.
	MinNormDim = 1
)

// DefaultCoef is the coefficient DefaultCoefFn returns without an RNG.
const DefaultCoef = 1.0

// PowerExponent is the α of the power cones built by AllCones.
const PowerExponent = 0.5
