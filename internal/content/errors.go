package content

import "fmt"

// ValidationError reports the first form field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PathError reports an image folder that is missing or not a directory.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("The image files folder path is invalid: %s (%v)", e.Path, e.Err)
	}
	return fmt.Sprintf("The image files folder path is invalid: %s", e.Path)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
