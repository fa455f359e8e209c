package validator_test

import (
	"errors"
	"testing"

	"github.com/goto/screener/core/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidate(t *testing.T) {
	type DummyStruct struct {
		VarOneOf string   `json:"varoneof" validate:"omitempty,oneof=type1 type2 type3"`
		VarRatio *float64 `json:"varratio" validate:"omitempty,gt=0"`
		VarPct   *float64 `json:"varpct" validate:"omitempty,gte=0,lte=100"`
		VarList  []string `json:"varlist" validate:"omitempty,dive,oneof=a b"`
	}
	ptr := func(f float64) *float64 { return &f }

	type TestCase struct {
		Description string
		Struct      interface{}
		Field       string
		ErrString   string
	}

	testCases := []TestCase{
		{
			Description: "empty struct is valid",
			Struct:      DummyStruct{},
		},
		{
			Description: "return error with supported values in oneof type validation",
			Struct:      DummyStruct{VarOneOf: "random"},
			Field:       "varoneof",
			ErrString:   "varoneof must be one of [type1 type2 type3]",
		},
		{
			Description: "return error when ratio is not positive",
			Struct:      DummyStruct{VarRatio: ptr(0)},
			Field:       "varratio",
			ErrString:   "varratio must be greater than 0",
		},
		{
			Description: "return error when percentage exceeds upper bound",
			Struct:      DummyStruct{VarPct: ptr(101)},
			Field:       "varpct",
			ErrString:   "varpct must be 100 or less",
		},
		{
			Description: "return error naming the offending list element",
			Struct:      DummyStruct{VarList: []string{"a", "c"}},
			Field:       "varlist[1]",
			ErrString:   "varlist[1] must be one of [a b]",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			err := validator.Default().Validate(tc.Struct)
			if tc.ErrString == "" {
				assert.NoError(t, err)
				return
			}

			var violations validator.Violations
			require.True(t, errors.As(err, &violations))
			require.Len(t, violations, 1)
			assert.Equal(t, tc.Field, violations[0].Field)
			assert.Equal(t, tc.ErrString, err.Error())
		})
	}
}

func TestValidateOneOf(t *testing.T) {
	type TestCase struct {
		Description string
		Value       string
		Enums       []string
		ErrString   string
	}

	testCases := []TestCase{
		{
			Description: "return error with supported values",
			Value:       "random",
			Enums:       []string{"type1", "type2", "type3"},
			ErrString:   "kind must be one of [type1 type2 type3]",
		},
		{
			Description: "empty value is accepted",
			Value:       "",
			Enums:       []string{"type1"},
		},
		{
			Description: "member value is accepted",
			Value:       "type2",
			Enums:       []string{"type1", "type2"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			err := validator.ValidateOneOf("kind", tc.Value, tc.Enums...)
			if tc.ErrString == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.ErrString)
		})
	}
}
