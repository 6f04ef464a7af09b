// Command algraphs answers structural queries about catalog graphs: degrees,
// the star test, neighborhoods and walks.
//
// Examples:
//
//	algraphs list
//	algraphs degree 6
//	algraphs path 0 6 --graph network
//	algraphs star --graph claw --json
//	algraphs bench --samples 31
//	algraphs --catalog graphs.yaml --graph triangle matrix --laplacian
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
