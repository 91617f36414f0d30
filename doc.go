// Package conedual builds the conic dual of an optimization model and solves
// models through their duals.
//
// 🚀 What is conedual?
//
//	An in-memory, thread-safe engine for conic duality:
//		• Models: variables, parameters, affine/quadratic functions in cones
//		• Cone registry: dual cones and inner products, user cones welcome
//		• Dualizer: one dual variable per constraint component, one
//		  stationarity constraint per primal variable
//		• Primal↔dual map: every dual entity traces back to its primal origin
//		• Dual optimizer: solve the dual, answer primal queries
//		• Documents & CLI: YAML/TOML models, `conedual dualize|solve|cones|generate`
//
// Under the hood:
//
//	cone/          — Set values, built-in kinds, Registry of duals and inner products
//	model/         — Model store, function variants, affine stacking
//	matrix/        — dense matrices for the stacked affine maps
//	dualize/       — Classifier, Dualizer, PrimalDualMap, DualNames
//	dualopt/       — DualOptimizer: a solver.Optimizer that solves the dual
//	solver/        — Optimizer contract and Status
//	solver/simplex — dense two-phase LP simplex used as reference solver
//	modelio/       — YAML / TOML model documents
//	builder/       — seeded model families for tests and `conedual generate`
//	cmd/conedual   — command-line front end
//
// Quick example (min y + z s.t. x = 1, (x, y, z) ∈ SOC):
//
//	dual: max y_eq
//	      x: y_soc₁ + y_eq = 0
//	      y: y_soc₂       = 1
//	      z: y_soc₃       = 1
//	      y_soc ∈ SOC(3)
//
//	go get github.com/katalvlaran/conedual
package conedual
