package match_test

import (
	"fmt"

	"neardup/internal/match"
)

func ExampleTokenSortRatio() {
	opts := match.DefaultNormalizeOptions()

	fmt.Println(match.TokenSortRatio("John Smith", "Smith, John", opts))
	fmt.Println(match.TokenSortRatio("color", "colour", opts))
	fmt.Println(match.TokenSortRatio("color", "flavor", opts))

	// Output:
	// 100
	// 91
	// 64
}

func ExampleMatch() {
	pool := []string{"colour", "flavor", "color"}

	for _, c := range match.Match("color", pool, 2, match.DefaultNormalizeOptions()) {
		fmt.Println(c.Text, c.Score)
	}

	// Output:
	// color 100
	// colour 91
}
