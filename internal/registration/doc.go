// Package registration renders the manual ERC-8004 registration guide for
// the FiberAgent identity and writes the environment template an operator
// completes afterwards. Nothing here talks to a chain: registry addresses,
// RPC endpoints and explorer links are compiled constants that only ever
// appear as text.
package registration
