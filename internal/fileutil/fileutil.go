// Package fileutil holds file permission modes shared by csvtools writers.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for files written on behalf of
// MCP clients (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the file permission mode for delimited output files,
// which are meant to be picked up by other tools and users.
const ReadableByAll os.FileMode = 0o644
