// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the erosion server.
//
// Each command maps onto one or two API calls made through
// [adapter.APIAdapter]. Results are written to the configured output as
// indented JSON.
package client
