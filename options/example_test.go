package options_test

import (
	"fmt"

	"github.com/mikenye/polyclip/options"
	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/segment"
)

func ExampleWithEpsilon() {
	s1 := segment.New(point.New(1.0, 1.0), point.New(4.0, 5.0))
	s2 := segment.New(point.New(1.0000001, 1.0000001), point.New(4.0000001, 5.0000001))
	epsilon := 1e-6

	fmt.Printf(
		"Is segment s1 %s equal to segment s2 %s without epsilon: %t\n",
		s1, s2, s1.Eq(s2),
	)

	fmt.Printf(
		"Is segment s1 %s equal to segment s2 %s with an epsilon of %.0e: %t\n",
		s1, s2, epsilon,
		s1.Eq(s2, options.WithEpsilon(epsilon)),
	)

	// Output:
	// Is segment s1 (4,5)-(1,1) equal to segment s2 (4.0000001,5.0000001)-(1.0000001,1.0000001) without epsilon: false
	// Is segment s1 (4,5)-(1,1) equal to segment s2 (4.0000001,5.0000001)-(1.0000001,1.0000001) with an epsilon of 1e-06: true
}
