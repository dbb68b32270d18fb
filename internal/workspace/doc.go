// Package workspace manages the working directory a sanitizer run extracts
// the input package into.
//
// Every run gets a fresh, uniquely named directory (e.g.,
// docxclean-20251214-122336-1f0c2a9e) under the system temp dir or a configured
// base directory. Callers defer Cleanup immediately after Create so the tree is
// removed on every exit path.
//
// A retained manager creates the same kind of directory but leaves it in place on
// Cleanup, which is useful when inspecting what a run produced.
package workspace
