// Package analysis measures the accuracy of fixed-step solves.
//
// [Converge] sweeps a method over doubling step counts on a problem
// with a known closed form and reports the error per level together
// with the observed order of accuracy:
//
//	study, _ := analysis.Converge(problems.NewExponential(), odelab.NewRK4(), 1, 0, 1, 100, 4)
//	// study.Orders ~ [4, 4]
package analysis
