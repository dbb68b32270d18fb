// Package archive extracts a word-processing package into a working directory
// and packs a working directory back into a zip container.
package archive
