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

package meal

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	lookupFound    = "found"
	lookupNotFound = "not_found"

	searchModeBrowse  = "browse"
	searchModeKeyword = "keyword"
)

var (
	lookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meals_lookups_total",
			Help: "Total number of meal lookups by identifier",
		},
		[]string{"outcome"},
	)

	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meals_searches_total",
			Help: "Total number of meal searches",
		},
		[]string{"mode"},
	)

	searchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "meals_search_results",
			Help:    "Number of records returned per search",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		},
	)
)
