// SPDX-License-Identifier: MIT
package univariate_test

import (
	"fmt"

	"github.com/katalvlaran/sparsegrid/univariate"
)

// ExampleChebyshev_Gridpoints lists the nested Clenshaw–Curtis nodes set by set.
func ExampleChebyshev_Gridpoints() {
	c := univariate.NewChebyshev()
	pts, _ := c.Gridpoints(3)
	for i := 1; i <= 3; i++ {
		r := c.SetRange(i)
		fmt.Printf("set %d: %.4f\n", i, pts[r.Lo:r.Hi])
	}
	// Output:
	// set 1: [0.0000]
	// set 2: [-1.0000 1.0000]
	// set 3: [-0.7071 0.7071]
}

// ExampleLeja shows linear growth: two new points per set index.
func ExampleLeja() {
	l := univariate.NewLeja()
	fmt.Println(l.SetLength(1), l.SetLength(2), l.Size(3))
	// Output:
	// 2 2 6
}
