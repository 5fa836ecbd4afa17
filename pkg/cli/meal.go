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
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/meal-catalog/pkg/catalog"
	mealerrors "github.com/NVIDIA/meal-catalog/pkg/errors"
	"github.com/NVIDIA/meal-catalog/pkg/meal"
)

func getCmd() *cli.Command {
	return &cli.Command{
		Name:                  "get",
		EnableShellCompletion: true,
		Usage:                 "Fetch one meal by id",
		Description: `Prints the meal with the given id. Fails when no meal has that id.

# Examples

  meals get --id 3
  meals get --id 3 --format json --catalog ./meals.yaml`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "id",
				Required: true,
				Usage:    "meal id",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			store, err := loadStore(ctx, cmd)
			if err != nil {
				return err
			}

			id := int(cmd.Int("id"))
			rec, ok := meal.NewFinder(store).FindByID(id)
			if !ok {
				return mealerrors.NewWithContext(mealerrors.ErrCodeNotFound,
					fmt.Sprintf("Meal with ID %d not found", id),
					map[string]any{"id": id})
			}

			return writeOutput(ctx, cmd, outFormat, rec)
		},
	}
}

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:                  "search",
		EnableShellCompletion: true,
		Usage:                 "Search meals by label keyword",
		Description: `Prints meals whose label contains the keyword, ignoring case, in catalog
order. Without --keyword the first --max-results meals are printed.

# Examples

  meals search --keyword chicken
  meals search --keyword soup --max-results 3 --format table
  meals search --max-results 5`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "keyword",
				Aliases: []string{"k"},
				Usage:   fmt.Sprintf("label keyword, at least %d characters", meal.MinKeywordLength),
			},
			&cli.IntFlag{
				Name:    "max-results",
				Aliases: []string{"n"},
				Value:   meal.DefaultMaxResults,
				Usage:   "maximum number of meals to return",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			q, err := buildQueryFromCmd(cmd)
			if err != nil {
				return err
			}

			store, err := loadStore(ctx, cmd)
			if err != nil {
				return err
			}

			results := meal.NewSearcher(store).Search(q.Keyword, q.MaxResults)
			return writeOutput(ctx, cmd, outFormat, meal.SearchResults{Results: results})
		},
	}
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:                  "list",
		EnableShellCompletion: true,
		Usage:                 "Print every meal in the catalog",
		Description: `Prints the whole catalog as a MealCatalog document. The output can be
used as a --catalog source.

# Examples

  meals list --format table
  meals list --catalog https://example.com/meals.json --output meals.yaml`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			store, err := loadStore(ctx, cmd)
			if err != nil {
				return err
			}

			return writeOutput(ctx, cmd, outFormat, catalog.NewDocument(store.All(), version))
		},
	}
}

// buildQueryFromCmd constructs a validated meal.Query from the search flags.
func buildQueryFromCmd(cmd *cli.Command) (*meal.Query, error) {
	q := meal.NewQuery()

	if cmd.IsSet("keyword") {
		q.SetKeyword(cmd.String("keyword"))
	}
	q.MaxResults = int(cmd.Int("max-results"))

	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}
