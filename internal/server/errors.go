// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHTTPHandler = errors.New("sandbox server needs the export API handler")
	errNoAddress     = errors.New("sandbox server needs a listen address")
)
