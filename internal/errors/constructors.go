package errors

// Convenience functions for common error patterns

// Config errors

func ConfigInvalid(path string, cause error) *IndexError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration could not be loaded").
		WithContext("path", path)
}

func SourceDirNotFound(dir string) *IndexError {
	return New(CategoryConfig, SeverityFatal, "source directory not found: "+dir).
		WithContext("path", dir)
}

func ValidationFailed(field, reason string) *IndexError {
	return New(CategoryValidation, SeverityFatal, "validation failed: "+field+": "+reason).
		WithContext("field", field).
		WithContext("reason", reason)
}

// Indexing errors

func ReadFailed(file string, cause error) *IndexError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to read document").
		WithContext("file", file)
}

func ListFailed(dir string, cause error) *IndexError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to list source directory").
		WithContext("path", dir)
}

func WriteFailed(path string, cause error) *IndexError {
	return Wrap(cause, CategoryOutput, SeverityFatal, "failed to write index").
		WithContext("path", path)
}

func IndexNotFound(path string, cause error) *IndexError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "index file not found, run generate first").
		WithContext("path", path)
}

// Internal errors

func InternalError(message string, cause error) *IndexError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
