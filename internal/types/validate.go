//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the config against its declared constraints.
func (c *GenerationConfig) Validate() error {
	return structValidator.Struct(c)
}
