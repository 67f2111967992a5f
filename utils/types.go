// Package utils provides small reflection helpers shared across the library.
package utils

import (
	"fmt"
	"strings"
)

// TypeName returns the type and inferred type name of the object passed in.
// For a generic instantiation such as *Statistics[float64] the inferred type
// is the type parameter.
func TypeName(object interface{}) (typeName string, inferredType string) {
	typeString := fmt.Sprintf("%T", object)
	parts := strings.Split(typeString, "[")

	typeName = strings.TrimPrefix(parts[0], "*")

	inferredType = ""
	if len(parts) > 1 {
		inferredType = strings.TrimSuffix(parts[1], "]")
	}
	return typeName, inferredType
}
