// Package queries contains read-only operations. Order and catalog reads go
// through the repository ports; the sales summary is a reporting query run
// directly against the database.
package queries
