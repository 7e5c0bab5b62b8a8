// CLASSIFICATION: COMMUNITY
// Filename: types.go v0.3
// Author: Lukas Bower
// Date Modified: 2026-10-14
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package http

import "adminerstatic/adminer/static"

// Logger is shared with the asset handler so one value serves both.
type Logger = static.Logger

// HealthReporter receives serving state transitions.
type HealthReporter interface {
	SetServing(bool)
}
