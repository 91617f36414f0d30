// SPDX-License-Identifier: MIT

// Package modelio reads and writes models as YAML or TOML documents.
//
// A document lists variable and parameter names, an optional objective and
// the constraints; functions refer to variables by name:
//
//	variables: [x, y, z]
//	objective:
//	  sense: max
//	  function: {kind: ScalarAffineFunction, terms: [{coef: 1, var: y}]}
//	constraints:
//	  - name: soccon
//	    function: {kind: VectorOfVariables, vars: [x, y, z]}
//	    set: {kind: SecondOrderCone, dim: 3}
//
// Function kinds use model.FunctionKind names and set kinds use cone.Kind
// tags, so custom cones round-trip as long as the reader registers them.
// Encoding never fails on names: unnamed or clashing variables are written
// as "_v<id>".
package modelio
