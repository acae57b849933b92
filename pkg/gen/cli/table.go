// Copyright © 2026 NVIDIA Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gen_cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/NVIDIA/safecast/pkg/gen"
	"github.com/NVIDIA/safecast/pkg/safecast"
)

type TableCmd struct {
	PtrWidth int `short:"w" help:"Only show policies for this pointer width" default:"0"`
}

func (cmd *TableCmd) Run(globals *Globals) error {
	return printTable(os.Stdout, cmd.PtrWidth)
}

func printTable(out io.Writer, ptrWidth int) error {
	widths := gen.PointerWidths
	switch ptrWidth {
	case 0:
	case 32, 64:
		widths = []int{ptrWidth}
	default:
		return errors.Errorf("unsupported pointer width %d", ptrWidth)
	}

	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprint(w, "FUNCTION\tRETURNS ERROR")
	for _, width := range widths {
		fmt.Fprintf(w, "\tPOLICY (%d-BIT)", width)
	}
	fmt.Fprintln(w)

	for _, p := range gen.Pairs() {
		fmt.Fprintf(w, "%s\t%t", p.FuncName(), p.Fallible())
		for _, width := range widths {
			fmt.Fprintf(w, "\t%s", policyString(p.Policy(width)))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func policyString(p safecast.Policy) string {
	if p == safecast.Infallible {
		return color.New(color.FgGreen).Sprint(p)
	}
	return color.New(color.FgYellow).Sprint(p)
}
