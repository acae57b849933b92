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

package gen

import (
	"bytes"
	"context"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// File is one generated source file of the safecast package.
type File struct {
	Name string
	// Constraint is the build constraint expression, if any.
	Constraint string
	// Pointer selects the pairs involving int or uint instead of the
	// fixed-width ones.
	Pointer bool
	// PtrBits is the pointer width the pointer-sized pairs resolve to.
	PtrBits int
}

const ptr32Arches = "386 || arm || mips || mipsle"

var Files = []File{
	{Name: "safecast_pairs.go"},
	{Name: "safecast_ptr32.go", Constraint: ptr32Arches, Pointer: true, PtrBits: 32},
	{Name: "safecast_ptr64.go", Constraint: "!(" + ptr32Arches + ")", Pointer: true, PtrBits: 64},
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by safecastgen. DO NOT EDIT.

{{if .Constraint}}//go:build {{.Constraint}}

{{end}}package {{.Package}}

import (
	"math"
)
{{range .Funcs}}
func {{.Name}}(v {{.From}}) {{if .Fallible}}({{.To}}, error){{else}}{{.To}}{{end}} {
{{- range .Checks}}
	if {{.Cond}} {
		return 0, {{.Err}}
	}
{{- end}}
	return {{.To}}(v){{if .Fallible}}, nil{{end}}
}
{{end}}`))

type funcData struct {
	Name     string
	From     string
	To       string
	Fallible bool
	Checks   []Check
}

// Render produces the gofmt'ed source of f for the given pairs.
func Render(f File, pkg string, pairs []Pair) ([]byte, error) {
	ptrBits := f.PtrBits
	if !f.Pointer {
		// fixed-width pairs resolve the same for any width
		ptrBits = PointerWidths[len(PointerWidths)-1]
	}

	data := struct {
		Package    string
		Constraint string
		Funcs      []funcData
	}{Package: pkg, Constraint: f.Constraint}
	for _, p := range pairs {
		if p.PointerSized() != f.Pointer {
			continue
		}
		data.Funcs = append(data.Funcs, funcData{
			Name:     p.FuncName(),
			From:     p.From.Name,
			To:       p.To.Name,
			Fallible: p.Fallible(),
			Checks:   p.Checks(ptrBits),
		})
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, &data); err != nil {
		return nil, errors.Wrap(err, "executing template for "+f.Name)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "formatting "+f.Name)
	}
	return src, nil
}

// Generate validates the pair table and writes every file of Files into
// dir. The files are rendered concurrently.
func Generate(ctx context.Context, dir, pkg string) error {
	pairs := Pairs()
	if err := Validate(pairs); err != nil {
		return errors.Wrap(err, "invalid pair table")
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, f := range Files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := Render(f, pkg, pairs)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, f.Name)
			if err := os.WriteFile(path, src, 0644); err != nil {
				return errors.Wrap(err, "writing "+path)
			}
			zap.L().Debug("generated", zap.String("path", path), zap.Int("bytes", len(src)))
			return nil
		})
	}
	return g.Wait()
}
