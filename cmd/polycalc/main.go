// cmd/polycalc: command-line polynomial calculator
//
// Usage:
//
//	polycalc mul "6*X + 1" "6*Y + 1"
//	polycalc factor "X^4 + 8*X^3 + 21*X^2 + 22*X + 8" -o json
//	polycalc eval --field bigint "X^3*Y^2 + 7*X*Y - 1" X=45468 Y=63570
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
