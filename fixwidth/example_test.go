package fixwidth_test

import (
	"fmt"
	"log"
	"os"

	"github.com/erraggy/csvtools/delim"
	"github.com/erraggy/csvtools/fixwidth"
)

func Example() {
	src := delim.NewBytesSource("scores.csv", []byte("ann,7\nbartholomew,12\n"))

	result, err := fixwidth.FixWithOptions(
		fixwidth.WithSource(src),
		fixwidth.WithWriter(os.Stdout),
	)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(result.Widths)
	// Output:
	// ann,         7
	// bartholomew,   12
	// [11 2]
}

func ExampleFormatRow() {
	widths := fixwidth.NewWidthTable()
	widths.Observe([]string{"a", "bb"})
	widths.Observe([]string{"ccc", "d"})

	for _, row := range [][]string{{"a", "bb"}, {"ccc", "d"}} {
		out, err := fixwidth.FormatRow(row, widths)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%q\n", out)
	}
	// Output:
	// ["a" "     bb"]
	// ["ccc" " d"]
}
