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
	"strconv"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/NVIDIA/safecast/pkg/gen"
	"github.com/NVIDIA/safecast/pkg/safecast"
)

type CheckCmd struct {
	From     string `short:"f" help:"Source integer type (int, int8, ..., uint64)"`
	To       string `short:"t" help:"Destination integer type (int, int8, ..., uint64)"`
	Value    string `short:"v" help:"Value of the source type, decimal or 0x/0o/0b prefixed (use --value=-1 for negatives)"`
	PtrWidth int    `short:"w" help:"Pointer width to resolve int and uint for (0 means this host)" default:"0"`
}

func (cmd *CheckCmd) Run(globals *Globals) error {
	if cmd.From == "" || cmd.To == "" || cmd.Value == "" {
		return errors.New("--from, --to and --value are required")
	}
	ptrBits := cmd.PtrWidth
	if ptrBits == 0 {
		ptrBits = strconv.IntSize
	}

	err := checkValue(cmd.From, cmd.To, ptrBits, cmd.Value)
	if err != nil {
		if _, ok := safecast.ErrorKindOf(err); !ok {
			return err
		}
		color.New(color.FgRed, color.Bold).Println(err)
		return nil
	}
	zap.L().Debug("converted", zap.String("from", cmd.From), zap.String("to", cmd.To), zap.Int("ptrBits", ptrBits))
	color.New(color.FgGreen, color.Bold).Println(cmd.Value)
	return nil
}

// checkValue parses value as the source type resolved for ptrBits and
// decides whether it converts into the destination type.
func checkValue(fromName, toName string, ptrBits int, value string) error {
	from, err := gen.Lookup(fromName)
	if err != nil {
		return err
	}
	to, err := gen.Lookup(toName)
	if err != nil {
		return err
	}
	if ptrBits != 32 && ptrBits != 64 {
		return errors.Errorf("unsupported pointer width %d", ptrBits)
	}
	fk, tk := from.Kind(ptrBits), to.Kind(ptrBits)

	var v safecast.Value
	if fk.Signed {
		n, err := strconv.ParseInt(value, 0, fk.Bits)
		if err != nil {
			return errors.Wrap(err, fmt.Sprintf("parsing %s value", from.Name))
		}
		v = safecast.ValueOf(n)
	} else {
		n, err := strconv.ParseUint(value, 0, fk.Bits)
		if err != nil {
			return errors.Wrap(err, fmt.Sprintf("parsing %s value", from.Name))
		}
		v = safecast.ValueOf(n)
	}
	return safecast.Check(fk, tk, v)
}
