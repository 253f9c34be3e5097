package errors

// Convenience constructors for common error patterns

// Config errors

func ConfigNotFound(path string) *RusticError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(cause error) *RusticError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration is invalid")
}

func ValidationFailed(field, reason string) *RusticError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Pipeline errors

func MetadataError(source string, cause error) *RusticError {
	return Wrap(cause, CategoryMetadata, SeverityError, "front matter extraction failed").
		WithContext("source", source)
}

func PathError(source string, cause error) *RusticError {
	return Wrap(cause, CategoryPath, SeverityFatal, "destination path resolution failed").
		WithContext("source", source)
}

func TemplateRenderError(source string, cause error) *RusticError {
	return Wrap(cause, CategoryTemplate, SeverityFatal, "page template rendering failed").
		WithContext("source", source)
}

func TemplateLoadError(cause error) *RusticError {
	return Wrap(cause, CategoryTemplate, SeverityFatal, "page template load failed")
}

func FileSystemError(operation, path string, cause error) *RusticError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "filesystem operation failed").
		WithContext("operation", operation).
		WithContext("path", path)
}

func BuildFailed(stage string, cause error) *RusticError {
	return Wrap(cause, CategoryBuild, SeverityFatal, "build failed").
		WithContext("stage", stage)
}
