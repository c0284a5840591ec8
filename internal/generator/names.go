package generator

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
)

// generateFieldName translates a botocore member name to a rust-idiomatic
// snake_case field name. Reserved words are escaped with a trailing
// underscore so they never collide with a Rust keyword.
func generateFieldName(memberName string) string {
	name := strcase.ToSnake(memberName)
	if name == "return" || name == "type" {
		return name + "_"
	}
	return name
}

// mutateTypeName turns a shape name into a Rust type name and applies
// the fixed collision table.
func mutateTypeName(typeName string) string {
	capitalized := capitalizeFirst(typeName)

	// some cloudfront types have underscores that anger the lint checker
	withoutUnderscores := strings.ReplaceAll(capitalized, "_", "")

	switch withoutUnderscores {
	case "Error":
		// S3 has an 'Error' shape that collides with Rust's Error trait
		return "S3Error"
	case "CancelSpotFleetRequests":
		// EC2 has a CancelSpotFleetRequestsError struct, avoid collision
		// with the generated error enum
		return "EC2CancelSpotFleetRequests"
	}
	return withoutUnderscores
}

// capitalizeFirst uppercases only the first character. Empty input is
// returned unchanged.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// errorTypeName names the error-enum variant generated for an exception
// shape.
func errorTypeName(name string) string {
	return mutateTypeName(name) + "Error"
}
