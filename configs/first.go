package configs

import (
	"errors"
	"fmt"
)

// First returns the first value at path, or the zero value if no file sets it.
// A value that does not decode into T panics with the path.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(fmt.Errorf("config %s: %w", path, err))
	}
	return value
}
