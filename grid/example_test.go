// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package grid_test

import (
	"fmt"

	"cloudeng.io/rangecal/dates"
	"cloudeng.io/rangecal/grid"
)

func ExampleBuild() {
	primary, _ := dates.ParseDateRange("2024-07-10:2024-07-16")
	cal := grid.Build(grid.Input{
		Year:    2024,
		Month:   7,
		Primary: primary,
		Handlers: grid.Dispatch(func(ev grid.Event) {
			fmt.Println(ev)
		}),
	})
	fmt.Println(len(cal.Cells), cal.Cells[0].Date, cal.Cells[len(cal.Cells)-1].Date)
	for _, c := range cal.Cells {
		if c.InPrimary {
			fmt.Printf("%v %v\n", c.Date, c.Role)
		}
	}
	cal.Cells[0].Click()
	cal.Cells[0].HoverEnter()
	// Output:
	// 35 2024-06-30 2024-08-03
	// 2024-07-10 start
	// 2024-07-11 inside
	// 2024-07-12 inside
	// 2024-07-13 inside
	// 2024-07-14 inside
	// 2024-07-15 inside
	// 2024-07-16 end
	// click 2024-06-30
}
