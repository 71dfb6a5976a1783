//
// Copyright (c) 2020-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
)

// PrintStats prints the circuit gate statistics table to out.
func (c *Circuit) PrintStats(out io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Gate").SetAlign(tabulate.ML)
	tab.Header("Count").SetAlign(tabulate.MR)
	tab.Header("Tables").SetAlign(tabulate.MR)

	for op := XOR; op <= INV; op++ {
		row := tab.Row()
		row.Column(op.String())
		row.Column(fmt.Sprintf("%d", c.Stats[op]))
		if op.Free() {
			row.Column("-")
		} else {
			row.Column(fmt.Sprintf("%d", c.Stats[op]))
		}
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", c.NumGates)).SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", c.NumTables())).SetFormat(tabulate.FmtBold)

	row = tab.Row()
	row.Column("Wires")
	row.Column(fmt.Sprintf("%d", c.NumWires))
	row.Column(FileSize(c.NumTables() * TableSize * 16).String())

	tab.Print(out)
}
