// Package sqlite provides the lead inbox backed by SQLite.
//
// The inbox only holds demo requests; campaign data never reaches it.
package sqlite
