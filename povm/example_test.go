package povm_test

import (
	"fmt"

	"github.com/jessicabavaresco/steerbounds/povm"
)

// ExampleTrine decodes one trine measurement at the reference angles and
// verifies it is a complete, positive measurement.
func ExampleTrine() {
	set, err := povm.Trine([]float64{0, 0, 0}, 1)
	if err != nil {
		fmt.Println("decode:", err)
		return
	}

	fmt.Println("measurements:", set.N)
	fmt.Println("outcomes:", set.K)
	fmt.Println("valid:", set.Validate(1e-9) == nil)
	// Output:
	// measurements: 1
	// outcomes: 3
	// valid: true
}

// ExampleProjective builds the {σx, σz} pair from Bloch x–z directions.
func ExampleProjective() {
	set, err := povm.Projective([][2]float64{{1, 0}, {0, 1}})
	if err != nil {
		fmt.Println("decode:", err)
		return
	}

	fmt.Println("measurements:", set.N)
	fmt.Println("valid:", set.Validate(1e-9) == nil)
	// Output:
	// measurements: 2
	// valid: true
}
