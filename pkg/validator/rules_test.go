package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/douglasroos/fcm/pkg/validator"
)

func TestOneOf(t *testing.T) {
	allowed := []string{"high", "normal"}

	t.Run("accepts allowed values", func(t *testing.T) {
		for _, v := range allowed {
			assert.NoError(t, validator.Apply(validator.OneOf("priority", v, allowed)), v)
		}
	})

	t.Run("rejects other values", func(t *testing.T) {
		for _, v := range []string{"", "High", "NORMAL", "urgent", " high"} {
			err := validator.Apply(validator.OneOf("priority", v, allowed))
			require.Error(t, err, v)

			verrs := validator.ExtractValidationErrors(err)
			require.Len(t, verrs, 1)
			assert.Equal(t, "must be one of: high, normal", verrs[0].Message)
			assert.Equal(t, v, verrs[0].Value)
		}
	})

	t.Run("works with typed values", func(t *testing.T) {
		type level string
		levels := []level{"a", "b"}
		assert.NoError(t, validator.Apply(validator.OneOf("level", level("b"), levels)))
		assert.Error(t, validator.Apply(validator.OneOf("level", level("c"), levels)))
	})

	t.Run("empty allowed list rejects everything", func(t *testing.T) {
		assert.Error(t, validator.Apply(validator.OneOf("x", 1, nil)))
	})
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name  string
		value int
		valid bool
	}{
		{"below lower bound", -1, false},
		{"lower bound", 0, true},
		{"inside", 3600, true},
		{"upper bound", 2419200, true},
		{"above upper bound", 2419201, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Apply(validator.Between("time_to_live", tt.value, 0, 2419200))
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			verrs := validator.ExtractValidationErrors(err)
			require.Len(t, verrs, 1)
			assert.Equal(t, "must be between 0 and 2419200", verrs[0].Message)
		})
	}

	t.Run("floats", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.Between("ratio", 0.5, 0.0, 1.0)))
		assert.Error(t, validator.Apply(validator.Between("ratio", 1.5, 0.0, 1.0)))
	})
}
