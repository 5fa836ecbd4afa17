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
	"context"
	"fmt"
	"log/slog"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/NVIDIA/meal-catalog/pkg/defaults"
	"github.com/NVIDIA/meal-catalog/pkg/k8s/client"
	"github.com/NVIDIA/meal-catalog/pkg/serializer"
)

const (
	// ConfigMapURIScheme prefixes ConfigMap sources: cm://namespace/name.
	ConfigMapURIScheme = "cm://"

	// ConfigMapKeyYAML and ConfigMapKeyJSON are the data keys searched, in order.
	ConfigMapKeyYAML = "meals.yaml"
	ConfigMapKeyJSON = "meals.json"
)

// ParseConfigMapURI splits cm://namespace/name.
func ParseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI %q: must start with %s", uri, ConfigMapURIScheme)
	}

	parts := strings.Split(strings.TrimPrefix(uri, ConfigMapURIScheme), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI %q: expected %snamespace/name", uri, ConfigMapURIScheme)
	}
	return parts[0], parts[1], nil
}

func (l *loader) loadConfigMap(ctx context.Context, uri string) (*Document, error) {
	namespace, name, err := ParseConfigMapURI(uri)
	if err != nil {
		return nil, err
	}

	kube := l.kube
	if kube == nil {
		kube, _, err = client.GetKubeClient()
		if err != nil {
			return nil, fmt.Errorf("failed to get kubernetes client: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
	defer cancel()

	cm, err := kube.CoreV1().ConfigMaps(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}

	for _, key := range []string{ConfigMapKeyYAML, ConfigMapKeyJSON} {
		content, ok := cm.Data[key]
		if !ok {
			continue
		}
		slog.Debug("reading catalog from ConfigMap",
			"namespace", namespace,
			"name", name,
			"key", key,
			"size", len(content))
		return decode(serializer.FormatFromPath(key), []byte(content))
	}

	return nil, fmt.Errorf("ConfigMap %s/%s has no %s or %s key",
		namespace, name, ConfigMapKeyYAML, ConfigMapKeyJSON)
}
