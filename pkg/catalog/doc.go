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

// Package catalog loads the fixed meal collection at startup.
//
// A source string selects where the records come from:
//
//	""                        embedded default catalog
//	"/path/to/meals.yaml"     local JSON or YAML file
//	"https://host/meals.json" remote document over HTTP(S)
//	"cm://namespace/name"     Kubernetes ConfigMap (key meals.yaml or meals.json)
//
// Every source decodes into a Document whose records are validated by
// meal.NewStore. The optional kind and apiVersion keys must be MealCatalog
// and meals.nvidia.com/v1 when set, so output of "meals list" loads back
// as a catalog. The returned store is immutable, so the server starts only
// after Load succeeds.
//
//	store, err := catalog.Load(ctx, os.Getenv("MEALS_CATALOG"))
//	if err != nil {
//	    return err
//	}
//	finder := meal.NewFinder(store)
package catalog
