// Package id generates the identifiers stored with demo requests.
//
// An id is a random UUIDv4 encoded as unpadded lowercase base32, so it is 26
// characters long and safe in URLs, file names and log lines.
package id
