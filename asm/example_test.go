package asm_test

import (
	"fmt"
	"strings"

	"github.com/oillang/oil/asm"
	"github.com/oillang/oil/value"
)

// Shows off the mnemonic set, a label and a literal-text line.
func ExampleAssemble() {
	code := `
# print a short greeting then halt
write
$greeting
quit
:greeting
"Hello, World!
`
	cells, err := asm.Assemble("greeting", strings.NewReader(code))
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := 0; i < len(cells); i++ {
		fmt.Printf("%d\t%s\n", i, cells[value.Int(int64(i))].Display())
	}
	// Output:
	// 0	4
	// 1	3
	// 2	3
	// 3	Hello, World!
}
