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

// Package client builds the Kubernetes clientset used to read catalogs
// stored in ConfigMaps (cm://namespace/name sources).
//
// GetKubeClient caches one client per process with sync.Once. BuildKubeClient
// creates a fresh client from an explicit kubeconfig path and bypasses the
// cache.
//
//	clientset, _, err := client.GetKubeClient()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//	cm, err := clientset.CoreV1().ConfigMaps(ns).Get(ctx, name, metav1.GetOptions{})
//
// # Authentication
//
// Kubeconfig discovery order:
//   - the explicit path passed to BuildKubeClient
//   - the KUBECONFIG environment variable
//   - ~/.kube/config when it exists
//   - the in-cluster service account
//
// Tests should inject k8s.io/client-go/kubernetes/fake instead.
package client
