//go:build ignore

package main

import (
	"fmt"
	"os"

	"github.com/ormasoftchile/nodescope/pkg/simserver"
)

func main() {
	data, err := simserver.GenerateFixtureSchema()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile("schemas/space-v1.json", data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("wrote schemas/space-v1.json")
}
