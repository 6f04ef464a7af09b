package symmat_test

import (
	"fmt"

	"github.com/katalvlaran/algraphs/symmat"
)

// ExampleSymMat shows that a write through (i,j) is visible through (j,i)
// and that only the upper triangle is stored.
func ExampleSymMat() {
	m, err := symmat.NewZero[int](3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_ = m.Set(2, 0, 9) // stored at (0,2)
	v, _ := m.At(0, 2)
	fmt.Println("At(0,2) =", v)
	fmt.Println("stored cells:", m.Len())
	fmt.Println(m.Values())

	_, ok := m.At(0, 3)
	fmt.Println("At(0,3) present?", ok)

	// Output:
	// At(0,2) = 9
	// stored cells: 6
	// [0 0 9 0 0 0]
	// At(0,3) present? false
}
