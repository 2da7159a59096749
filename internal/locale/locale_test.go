package locale_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/UnknownOlympus/hermes/internal/locale"
	"github.com/UnknownOlympus/hermes/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Run("known locales", func(t *testing.T) {
		for _, lang := range []string{"fa", "en", " FA "} {
			msgs, err := locale.Lookup(lang)
			require.NoError(t, err)
			assert.NotEmpty(t, msgs.Separator)
			assert.Len(t, msgs.Labels, len(models.Fields()))
		}
	})

	t.Run("unknown locale", func(t *testing.T) {
		_, err := locale.Lookup("de")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported locale")
	})

	t.Run("available is sorted", func(t *testing.T) {
		assert.Equal(t, []string{"en", "fa"}, locale.Available())
	})
}

func TestMessages_ErrorMessage(t *testing.T) {
	msgs, err := locale.Lookup("en")
	require.NoError(t, err)

	assert.Empty(t, msgs.ErrorMessage(nil))
	assert.Contains(t, msgs.ErrorMessage(fmt.Errorf("%w: code 1", models.ErrPermissionDenied)), "allow location access")
	assert.Contains(t, msgs.ErrorMessage(models.ErrUnavailable), "not available")
	assert.Contains(t, msgs.ErrorMessage(models.ErrUpstream), "address services")
	assert.Contains(t, msgs.ErrorMessage(errors.New("boom")), "unexpected")
}

func TestMessages_Prompt(t *testing.T) {
	msgs, err := locale.Lookup("fa")
	require.NoError(t, err)

	prompt := msgs.Prompt(models.NewCoordinates(35.6892, 51.389))

	assert.Contains(t, prompt, "35.6892")
	assert.Contains(t, prompt, "51.389")
	for _, field := range models.Fields() {
		assert.Contains(t, prompt, "\n"+msgs.Labels[field]+": [", "label for %s must be on its own line", field)
	}
}

func TestMessages_CopyAndShare(t *testing.T) {
	msgs, err := locale.Lookup("en")
	require.NoError(t, err)
	coords := models.NewCoordinates(35.6892, 51.389)

	t.Run("copy with postcode", func(t *testing.T) {
		text := msgs.CopyText(models.AddressDetails{FullAddress: "Tehran, Iran", Postcode: "1234567890"}, coords)
		assert.Contains(t, text, "Tehran, Iran")
		assert.Contains(t, text, "1234567890")
		assert.Contains(t, text, "35.6892, 51.389")
	})

	t.Run("copy without postcode", func(t *testing.T) {
		text := msgs.CopyText(models.AddressDetails{FullAddress: "Tehran, Iran"}, coords)
		assert.True(t, strings.Contains(text, "Postcode: unknown"))
	})

	t.Run("share", func(t *testing.T) {
		assert.Equal(t, "My exact location", msgs.ShareTitle())
		assert.Equal(t, "Address: Tehran\nPostcode: ", msgs.ShareText(models.AddressDetails{FullAddress: "Tehran"}))
		assert.Equal(t, "Address: Tehran\nPostcode: 1234567890",
			msgs.ShareText(models.AddressDetails{FullAddress: "Tehran", Postcode: "1234567890"}))
	})
}
