// Package ports declares the storage interface the surrounding tooling
// plugs adapters into, plus the contract test every adapter must pass.
package ports
