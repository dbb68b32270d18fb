// Package sanitize runs one sanitizer pass over a word-processing package:
// unpack into a private workspace, rewrite the main document, synchronize the
// manifests, pack the result, and remove the workspace on every exit path.
package sanitize
