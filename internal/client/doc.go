// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive export client runtime.
//
// It wires the job journal, the export service transport and the lifecycle
// services into the terminal UI for a single process lifecycle.
package client
