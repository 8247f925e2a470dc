// SPDX-License-Identifier: Apache-2.0

// Package client implements the client application runtime.
//
// It wires local storage, remote synchronization, the save scheduler and
// cross-context broadcast into a single process lifecycle.
package client
