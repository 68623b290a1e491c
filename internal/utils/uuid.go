// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across the
// export client and the sandbox server: the resty client wrapper, JSON:API
// response writing, Authorization header parsing and identifier generation.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for request correlation
// headers and sandbox export jobs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
