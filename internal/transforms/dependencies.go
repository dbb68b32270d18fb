package transforms

// Transformer is the dependency-based interface for document passes.
type Transformer interface {
	// Name returns the unique identifier for this transformer (lowercase snake_case)
	Name() string

	// Dependencies declares ordering constraints
	Dependencies() TransformDependencies

	// Transform rewrites doc in place and records match counts
	Transform(doc *Document, counts *Counts) error
}

// TransformDependencies declares explicit ordering constraints and capabilities.
type TransformDependencies struct {
	// MustRunAfter lists transform names that must complete before this one.
	MustRunAfter []string

	// MustRunBefore lists transform names that must run after this one.
	MustRunBefore []string

	// RemovesParts indicates this transform deletes package parts besides editing the document
	RemovesParts bool
}
