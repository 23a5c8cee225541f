package naming_test

import (
	"fmt"

	"either-generator/internal/naming"
)

func ExampleStem() {
	st := naming.NewStem("F", nil)
	fmt.Println(st.Next(), st.Next(), st.Next())

	st = naming.NewStem("F", map[string]struct{}{"F1": {}})
	fmt.Println(st.Next(), st.Next(), st.Next())

	// Output:
	// F0 F1 F2
	// F0 F2 F3
}
