// Package types defines the Inventory data model, the Persister interface,
// configuration, and standard errors for the Stockroom item store.
package types
