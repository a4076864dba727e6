package validator_test

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"

	"github.com/aoideee/bookshelf/internal/validator"
)

func Test_Validator_Check(t *testing.T) {
	v := validator.New()

	v.Check(true, "port", "must be positive")
	assert.True(t, v.Valid())

	v.Check(false, "port", "must be positive")
	v.Check(false, "port", "second message is dropped")

	assert.False(t, v.Valid())
	assert.Equal(t, map[string]string{"port": "must be positive"}, v.Errors)
}

func Test_Validator_Merge(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Pages int    `json:"pages"`
	}

	t.Run("field_errors_are_recorded_by_json_name", func(t *testing.T) {
		p := payload{Pages: -1}
		v := validator.New()

		err := v.Merge(validation.ValidateStruct(&p,
			validation.Field(&p.Name, validation.Required),
			validation.Field(&p.Pages, validation.Min(0)),
		))

		assert.NoError(t, err)
		assert.Contains(t, v.Errors, "name")
		assert.Contains(t, v.Errors, "pages")
	})

	t.Run("nil_result_keeps_validator_valid", func(t *testing.T) {
		v := validator.New()

		assert.NoError(t, v.Merge(nil))
		assert.True(t, v.Valid())
	})

	t.Run("non_field_errors_are_returned", func(t *testing.T) {
		v := validator.New()
		internal := errors.New("rule exploded")

		err := v.Merge(internal)

		assert.ErrorIs(t, err, internal)
		assert.True(t, v.Valid())
	})
}

func Test_Validator_FirstFailed(t *testing.T) {
	v := validator.New()
	v.AddError("readPage", "too big")
	v.AddError("name", "missing")

	assert.Equal(t, "name", v.FirstFailed("name", "readPage"))
	assert.Equal(t, "readPage", v.FirstFailed("readPage", "name"))
	assert.Equal(t, "", v.FirstFailed("year"))
}

func Test_In(t *testing.T) {
	assert.True(t, validator.In("staging", "development", "staging", "production"))
	assert.False(t, validator.In("qa", "development", "staging", "production"))
}
