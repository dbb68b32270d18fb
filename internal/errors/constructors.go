package errors

// Convenience functions for the error kinds a sanitizer run can produce.

// InputNotFound is raised before any temporary resources are allocated.
func InputNotFound(path string) *CleanError {
	return New(CategoryInput, "input file does not exist").
		WithContext("path", path)
}

func InvalidArchive(path string, cause error) *CleanError {
	return Wrap(cause, CategoryArchive, "input is not a readable zip archive").
		WithContext("path", path)
}

// MissingCoreFile signals the archive lacks the main document part.
func MissingCoreFile(part string) *CleanError {
	return New(CategoryStructure, "archive does not contain the main document part").
		WithContext("part", part)
}

func TransformFailure(stage string, cause error) *CleanError {
	return Wrap(cause, CategoryTransform, "document transformation failed").
		WithContext("stage", stage)
}

func ConfigInvalid(field, reason string) *CleanError {
	return New(CategoryConfig, "invalid configuration").
		WithContext("field", field).
		WithContext("reason", reason)
}

func ConfigLoadFailed(path string, cause error) *CleanError {
	return Wrap(cause, CategoryConfig, "failed to load configuration").
		WithContext("path", path)
}

func WorkspaceError(operation string, cause error) *CleanError {
	return Wrap(cause, CategoryFileSystem, "workspace operation failed").
		WithContext("operation", operation)
}

func InternalError(message string, cause error) *CleanError {
	return Wrap(cause, CategoryInternal, message)
}

// OutputFailure covers packing or replacing the output archive.
func OutputFailure(path string, cause error) *CleanError {
	return Wrap(cause, CategoryFileSystem, "failed to write output archive").
		WithContext("output", path)
}
