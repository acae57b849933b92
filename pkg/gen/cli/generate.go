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
	"context"

	"go.uber.org/zap"

	"github.com/NVIDIA/safecast/pkg/gen"
)

type GenerateCmd struct {
	Dir     string `short:"d" help:"Output directory" default:"." type:"existingdir"`
	Package string `short:"p" help:"Package name of the generated files" default:"safecast"`
}

func (cmd *GenerateCmd) Run(globals *Globals) error {
	if err := gen.Generate(context.Background(), cmd.Dir, cmd.Package); err != nil {
		return err
	}
	zap.L().Info("complete", zap.String("dir", cmd.Dir), zap.Int("pairs", len(gen.Pairs())))
	return nil
}
