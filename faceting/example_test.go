// example_test.go — runnable documentation examples.

package faceting_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/polyfacet/faceting"
	"github.com/katalvlaran/polyfacet/orbit"
	"github.com/katalvlaran/polyfacet/shapes"
)

// Under its full symmetry the square has exactly one faceting: itself.
func ExampleEnumerate() {
	pts, vm, _ := shapes.Polygon(4)

	results, _ := faceting.Enumerate(context.Background(), pts, faceting.WithVertexMap(vm), faceting.DefaultOptions())
	for _, r := range results {
		fmt.Printf("faceting with %d facets\n", len(r.Ranks[len(r.Ranks)-2]))
	}
	// Output:
	// faceting with 4 facets
}

// Dropping the symmetry to the identity frees every edge and diagonal to
// combine independently: four triangles and three quadrilaterals.
func ExampleEnumerate_identityMap() {
	pts, _, _ := shapes.Polygon(4)

	results, _ := faceting.Enumerate(context.Background(), pts, faceting.WithVertexMap(orbit.Identity(4)), faceting.DefaultOptions())
	fmt.Println(len(results), "facetings")
	// Output:
	// 7 facetings
}
