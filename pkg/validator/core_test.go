package validator_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acdih/synaptic/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "project_id", Message: "is required"})
		assert.Equal(t, "validation failed: project_id: is required", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "project_id", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "threshold", Message: "out of range"})

		msg := errs.Error()
		assert.Contains(t, msg, "project_id: is required")
		assert.Contains(t, msg, "threshold: out of range")
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "a", Message: "first"})
	errs.Add(validator.ValidationError{Field: "b", Message: "second"})
	errs.Add(validator.ValidationError{Field: "a", Message: "third"})

	assert.True(t, errs.Has("a"))
	assert.False(t, errs.Has("c"))
	assert.Equal(t, []string{"first", "third"}, errs.Get("a"))
	assert.Equal(t, []string{"a", "b"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Run("nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", "value"),
			validator.InRange("ratio", 0.5, 0.0, 1.0),
			validator.MinNum("workers", 4, 1),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", "  "),
			validator.InRange("ratio", 1.5, 0.0, 1.0),
			validator.MinNum("workers", 0, 1),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, []string{"name", "ratio", "workers"}, verrs.Fields())
		assert.Equal(t, 1.5, verrs[1].Value)
	})

	t.Run("matches sentinel through join", func(t *testing.T) {
		errWrapper := errors.New("wrapper")
		err := errors.Join(errWrapper, validator.Apply(validator.RequiredString("name", "")))

		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.ErrorIs(t, err, errWrapper)
		assert.True(t, validator.IsValidationError(err))
		assert.True(t, validator.ExtractValidationErrors(err).Has("name"))
	})
}

func TestExtractValidationErrors_NonValidation(t *testing.T) {
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("other")))
	assert.False(t, validator.IsValidationError(errors.New("other")))
	assert.False(t, validator.IsValidationError(nil))
}

func TestInRange(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		valid bool
	}{
		{name: "lower bound", value: 0, valid: true},
		{name: "upper bound", value: 1, valid: true},
		{name: "inside", value: 0.7, valid: true},
		{name: "below", value: -0.0001, valid: false},
		{name: "above", value: 1.0001, valid: false},
		{name: "nan", value: math.NaN(), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validator.InRange("ratio", tt.value, 0.0, 1.0)
			assert.Equal(t, tt.valid, rule.Check())
		})
	}
}

func TestRequiredString(t *testing.T) {
	assert.True(t, validator.RequiredString("f", "x").Check())
	assert.False(t, validator.RequiredString("f", "").Check())
	assert.False(t, validator.RequiredString("f", " \t\n").Check())
}

func TestMinNum(t *testing.T) {
	assert.True(t, validator.MinNum("f", 1, 1).Check())
	assert.False(t, validator.MinNum("f", -3, 1).Check())
}
