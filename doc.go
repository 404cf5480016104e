// Package hexspiral lays symbol sequences out on spiral hex grids and
// searches them for words.
//
// What is hexspiral?
//
//	A small, dependency-light library plus CLI:
//		• hexgrid — Position, the six hex Directions, the Grid container,
//		  Neighbors and Render
//		• spiral  — grid sizing (WidthFor) and the outward spiral Build
//		• route   — Locate a symbol, Trace a word through adjacent cells
//		• cmd/hexspiral — cobra CLI over the three packages
//
// Quick example (19 symbols, 5×5 grid, A at the center):
//
//	Q R S . .
//	P F G H .
//	O E A B I
//	. N D C J
//	. . M L K
//
//	g, _ := spiral.BuildString("ABCDEFGHIJKLMNOPQRS")
//	r, _ := route.Trace(g, []rune("ABHSRQPE"), g.Center())
//	// r = [{2, 2} {3, 2} {3, 1} {2, 0} {1, 0} {0, 0} {0, 1} {1, 2}]
//
// Route tracing is greedy and never backtracks; see package route.
//
//	go get github.com/katalvlaran/hexspiral
package hexspiral
