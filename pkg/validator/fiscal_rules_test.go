package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscalkit/nifkit/pkg/nif"
	"github.com/fiscalkit/nifkit/pkg/validator"
)

func TestValidNIF(t *testing.T) {
	t.Run("valid numbers", func(t *testing.T) {
		validNIFs := []string{
			"123456789",
			"451234561",
			"500960046",
			"500829993",
		}

		for _, candidate := range validNIFs {
			err := validator.Apply(validator.ValidNIF("nif", candidate))
			assert.NoError(t, err, "NIF should be valid: %s", candidate)
		}
	})

	t.Run("invalid numbers", func(t *testing.T) {
		invalidNIFs := []string{
			"",
			"12345678",
			"12345678A",
			"012345678",
			"123456780",
			"987654321",
		}

		for _, candidate := range invalidNIFs {
			err := validator.Apply(validator.ValidNIF("nif", candidate))
			require.Error(t, err, "NIF should be invalid: %q", candidate)

			verrs := validator.ExtractValidationErrors(err)
			require.NotNil(t, verrs)
			assert.True(t, verrs.Has("nif"))
			assert.Equal(t, []string{"must be a valid Portuguese NIF"}, verrs.Get("nif"))
		}
	})
}

func TestNIFInCategory(t *testing.T) {
	t.Run("accepted category", func(t *testing.T) {
		err := validator.Apply(validator.NIFInCategory("vat_number", "500960046", nif.Company))
		assert.NoError(t, err)
	})

	t.Run("valid nif of another category", func(t *testing.T) {
		err := validator.Apply(validator.NIFInCategory("vat_number", "123456789", nif.Company))
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"taxpayer category is not accepted"}, verrs.Get("vat_number"))
	})

	t.Run("invalid nif fails regardless of category", func(t *testing.T) {
		err := validator.Apply(validator.NIFInCategory("vat_number", "500960040", nif.Company))
		assert.Error(t, err)
	})

	t.Run("multiple accepted categories", func(t *testing.T) {
		err := validator.Apply(
			validator.NIFInCategory("nif", "123456789", nif.Individual, nif.NonResident),
		)
		assert.NoError(t, err)
	})
}
