// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package slot

import (
	"fmt"
)

type table struct {
	OnSelect    Handler[int]
	RowProvider DataSource[int, string]
}

func (t *table) selectRow(i int) {
	t.OnSelect.Invoke(i)
}

func (t *table) row(i int) string {
	row, ok := t.RowProvider.Invoke(i)
	if !ok {
		return "<empty>"
	}
	return row
}

func Example() {
	var tbl table

	fmt.Println(tbl.row(0))

	tbl.OnSelect.Set(func(i int) {
		fmt.Println("selected row", i)
	})
	tbl.RowProvider.Set(func(i int) string {
		return fmt.Sprintf("row %d", i)
	})

	tbl.selectRow(2)
	fmt.Println(tbl.row(0))

	// Output:
	// <empty>
	// selected row 2
	// row 0
}
