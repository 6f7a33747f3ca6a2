// Package pathutil validates file paths supplied by users and MCP clients.
//
// [SanitizeOutputPath] cleans an output path, resolves it to an absolute
// path, and rejects existing symlinks so output cannot be redirected to an
// unintended location:
//
//	safe, err := pathutil.SanitizeOutputPath(userProvidedPath)
//	if err != nil {
//	    return err // symlink detected or path unresolvable
//	}
//
// [RejectInputOverwrite] refuses an output path that names one of the
// inputs, whether by the same absolute path or by file identity.
package pathutil
