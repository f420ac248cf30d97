package validation

import (
	"sync"

	"github.com/go-playground/mold/v4"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	onceValidate sync.Once

	transform     *mold.Transformer
	onceTransform sync.Once
)

func Validate() *validator.Validate {
	onceValidate.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// Transform applies `mod` tags (trim, lcase, ...) before validation.
func Transform() *mold.Transformer {
	onceTransform.Do(func() {
		transform = modifiers.New()
	})

	return transform
}
