package monkeymap_test

import (
	"fmt"

	"github.com/katalvlaran/aoc22/monkeymap"
)

// ExampleSolve walks the sample net once as a flat map and once folded into
// a cube.
func ExampleSolve() {
	input := "" +
		"        ...#\n" +
		"        .#..\n" +
		"        #...\n" +
		"        ....\n" +
		"...#.......#\n" +
		"........#...\n" +
		"..#....#....\n" +
		"..........#.\n" +
		"        ...#....\n" +
		"        .....#..\n" +
		"        .#......\n" +
		"        ......#.\n" +
		"\n" +
		"10R5L5R10L4R5L5\n"

	ans, err := monkeymap.Solve(input)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ans)
	// Output: 6032 5031
}
