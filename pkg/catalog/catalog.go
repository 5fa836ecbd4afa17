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

package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	mealerrors "github.com/NVIDIA/meal-catalog/pkg/errors"
	"github.com/NVIDIA/meal-catalog/pkg/header"
	"github.com/NVIDIA/meal-catalog/pkg/k8s/client"
	"github.com/NVIDIA/meal-catalog/pkg/meal"
	"github.com/NVIDIA/meal-catalog/pkg/serializer"
)

//go:embed data/meals.yaml
var defaultCatalog []byte

// Document is the on-disk shape of a catalog.
type Document struct {
	header.Header `json:",inline" yaml:",inline"`

	Meals []meal.Record `json:"meals" yaml:"meals"`
}

// NewDocument returns a MealCatalog document holding records, stamped with
// the producing tool version.
func NewDocument(records []meal.Record, version string) *Document {
	doc := &Document{Meals: records}
	doc.Init(header.KindMealCatalog, header.APIVersion, version)
	return doc
}

// TableHeader implements serializer.Tabular.
func (d *Document) TableHeader() []string {
	return meal.SearchResults{}.TableHeader()
}

// TableRows implements serializer.Tabular.
func (d *Document) TableRows() [][]string {
	return meal.SearchResults{Results: d.Meals}.TableRows()
}

// Kind names a catalog source type.
type Kind string

const (
	KindEmbedded  Kind = "embedded"
	KindFile      Kind = "file"
	KindURL       Kind = "url"
	KindConfigMap Kind = "configmap"
)

// Option configures Load.
type Option func(*loader)

type loader struct {
	kube       client.Interface
	httpReader *serializer.HttpReader
}

// WithKubeClient sets the client used for cm:// sources. Without it the
// shared client from client.GetKubeClient is used.
func WithKubeClient(c client.Interface) Option {
	return func(l *loader) {
		l.kube = c
	}
}

// WithHTTPReader sets the reader used for http(s) sources.
func WithHTTPReader(r *serializer.HttpReader) Option {
	return func(l *loader) {
		l.httpReader = r
	}
}

// KindOf reports which loader handles source.
func KindOf(source string) Kind {
	s := strings.TrimSpace(source)
	switch {
	case s == "":
		return KindEmbedded
	case strings.HasPrefix(s, ConfigMapURIScheme):
		return KindConfigMap
	case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"):
		return KindURL
	default:
		return KindFile
	}
}

// Load reads, decodes and validates the catalog named by source.
func Load(ctx context.Context, source string, opts ...Option) (*meal.Store, error) {
	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}

	source = strings.TrimSpace(source)
	kind := KindOf(source)

	doc, err := l.load(ctx, kind, source)
	if err != nil {
		return nil, mealerrors.WrapWithContext(mealerrors.ErrCodeInternal,
			"failed to load meal catalog", err,
			map[string]any{"source": displaySource(source), "kind": string(kind)})
	}

	store, err := meal.NewStore(doc.Meals)
	if err != nil {
		return nil, mealerrors.WrapWithContext(mealerrors.ErrCodeInternal,
			"invalid meal catalog", err,
			map[string]any{"source": displaySource(source)})
	}

	slog.Info("meal catalog loaded",
		"source", displaySource(source),
		"kind", kind,
		"records", store.Len())

	return store, nil
}

func (l *loader) load(ctx context.Context, kind Kind, source string) (*Document, error) {
	switch kind {
	case KindEmbedded:
		return decode(serializer.FormatYAML, defaultCatalog)
	case KindConfigMap:
		return l.loadConfigMap(ctx, source)
	case KindURL:
		return l.loadURL(ctx, source)
	case KindFile:
		return loadFile(source)
	default:
		return nil, fmt.Errorf("unsupported catalog source kind %q", kind)
	}
}

func (l *loader) loadURL(ctx context.Context, url string) (*Document, error) {
	reader := l.httpReader
	if reader == nil {
		reader = serializer.NewHttpReader()
	}

	data, err := reader.ReadWithContext(ctx, url)
	if err != nil {
		return nil, err
	}
	return decode(serializer.FormatFromPath(url), data)
}

func loadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return decode(serializer.FormatFromPath(path), data)
}

func decode(format serializer.Format, data []byte) (*Document, error) {
	reader, err := serializer.NewReader(format, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var doc Document
	if err := reader.Deserialize(&doc); err != nil {
		return nil, err
	}
	if err := doc.Check(header.KindMealCatalog); err != nil {
		return nil, err
	}
	return &doc, nil
}

// displaySource names the source in logs and errors.
func displaySource(source string) string {
	if source == "" {
		return string(KindEmbedded)
	}
	return source
}
