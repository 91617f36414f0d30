// SPDX-License-Identifier: MIT

// Package builder provides "functional-options"-style constructors for model
// families: random feasible LPs, second-order-cone norm problems and a
// model touching every built-in cone. They feed property tests, examples and
// benchmarks of the dualizer and the dual optimizer.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds RNG, variable-name scheme and coefficient law.
//   - Variable-name schemes (IDFn): DefaultIDFn ("x1","x2",…), IndexedIDFn.
//   - Coefficient laws (CoefFn): DefaultCoefFn, ConstantCoefFn, IntCoefFn.
//   - Constructors: RandomLP, SOCNorm, AllCones; compose them with
//     BuildModel.
//
// Guarantees:
//
//   - Determinism: with WithSeed the same call yields the same model.
//   - Fast-fail on meaningless option parameters via panics in option
//     constructors; invalid build parameters return errors wrapping the
//     sentinels in errors.go.
//   - Variable names continue across constructors, so composed models keep
//     unique names.
//
// AI-Hints:
//   - RandomLP is feasible by construction (a hidden nonnegative point
//     satisfies every row) and bounded (positive costs over x ≥ 0).
//   - SOCNorm(n) has optimum 1/√n at x = (1/n, …, 1/n).
package builder
