// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

// Package occasion maps calendar dates to shopping occasions.
//
// A fixed table of roughly twenty Vietnamese and international occasions is
// evaluated against a date supplied by the caller. Detection is a pure
// function: no clock access, no persistence, no errors. Lunar and
// nth-weekday holidays are approximated with inclusive day ranges rather
// than computed exactly; the ranges are part of the ranking contract.
package occasion
