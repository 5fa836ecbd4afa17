// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/meal-catalog/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the meal catalog over HTTP",
		Description: `Loads the catalog and starts the HTTP API. The server listens on PORT
(default 8000) and stops gracefully on SIGINT or SIGTERM.

# Examples

  meals serve
  PORT=9000 meals serve --catalog cm://default/meals`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Serve(ctx, cmd.String("catalog"))
		},
	}
}
