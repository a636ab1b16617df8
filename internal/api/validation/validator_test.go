package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email,omitempty" validate:"required"`
	Comment string `json:"-"`
}

func TestMissingFieldsUsesJSONNames(t *testing.T) {
	v := New()

	err := v.Struct(sample{Name: "Ana"})
	require.Error(t, err)
	assert.Equal(t, []string{"email"}, MissingFields(err))

	err = v.Struct(sample{})
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"name", "email"}, MissingFields(err))

	assert.NoError(t, v.Struct(sample{Name: "Ana", Email: "ana@x.com"}))
}

func TestFormatValidationErrorIgnoresOtherErrors(t *testing.T) {
	assert.Empty(t, FormatValidationError(errors.New("boom")))
	assert.Empty(t, MissingFields(nil))
}
