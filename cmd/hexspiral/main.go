// Command hexspiral builds a spiral hex grid from a symbol sequence and
// answers locate / neighbor / route queries against it.
//
//	hexspiral grid ABCDEFGHIJKLMNOPQRS
//	hexspiral trace ABCDEFGHIJKLMNOPQRS ABHSRQPE
//	hexspiral locate ABCDEFGHIJKLMNOPQRS K
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
