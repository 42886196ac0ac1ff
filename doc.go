// Package probfit is your in-memory workbench for declaring probabilistic
// models as composable density nodes and fitting them to one-dimensional
// data by maximum likelihood.
//
// 🚀 What is probfit?
//
//	A small, deterministic library that brings together:
//		• Parameters: named, boundable scalar unknowns with free/fixed roles
//		• Density nodes: Normal, Exponential and two-component mixtures (Mix2)
//		• Truncation: exact renormalization of any primitive to [lower, upper]
//		• Likelihood: negative log-likelihood compiled from the observed node
//		• Fitting: bounded quasi-Newton MLE with a structured result record
//		• Evaluation: PDF/LogPDF of the fitted model over arbitrary points
//
// ✨ Why choose probfit?
//
//   - Explicit construction – every node takes its *model.Model; no ambient state
//   - Rock-solid guarantees – sentinel errors, fail-fast validation, in-code docs
//   - Feasible by construction – box constraints enforced via bijective transforms
//   - Honest reporting – non-convergence is data (Result.Success), never a crash
//
// Under the hood, everything is organized under three subpackages:
//
//	model/ — Parameter, Scalar, Node and the Model registration context
//	dist/  — Normal, Exponential, Mix2 density nodes + truncation options
//	fit/   — NLL objective, bound transforms, gonum optimizer adapter
//
// Quick sketch:
//
//	    f ──────┐
//	   mu ──┐   │
//	sigma ──┴ Normal ───── Mix2 ── observed
//	  lam ─── Exponential ──┘
//
//	four parameters feeding a two-component mixture truncated to [0, 50].
//
// Dive into examples/ for a full mixture-recovery walkthrough, and into each
// package's doc.go for contracts, invariants and complexity notes.
//
//	go get github.com/katalvlaran/probfit
package probfit
