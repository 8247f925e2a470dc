// SPDX-License-Identifier: Apache-2.0

package client

// Client is the lifecycle contract a runnable client application satisfies.
type Client interface {
	// Run starts the application and blocks until shutdown.
	Run() error
}
