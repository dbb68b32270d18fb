// Package transforms rewrites the main document part of a word-processing
// package so that downstream layout tools can import it.
//
// Each transformer is a textual pass over the raw markup. Passes declare
// ordering constraints through TransformDependencies and BuildPipeline
// resolves them into a deterministic execution order:
//
//	strip_svg_extensions -> resolve_revisions -> strip_comments -> simplify_alternate_content
//
// Matching is done on raw text rather than a DOM. Elements are located by
// pairing open and close tags of one (namespace-prefix agnostic) name, so a
// match always ends at its balanced close tag and never swallows trailing
// unrelated content, nested occurrences included.
package transforms
