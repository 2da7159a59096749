package geocoding_test

import (
	"testing"

	"github.com/UnknownOlympus/hermes/internal/geocoding"
	"github.com/UnknownOlympus/hermes/internal/locale"
	"github.com/UnknownOlympus/hermes/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser(t *testing.T, lang string) *geocoding.LabelParser {
	t.Helper()
	msgs, err := locale.Lookup(lang)
	require.NoError(t, err)

	return geocoding.NewLabelParser(msgs.Labels)
}

func TestLabelParser_Parse(t *testing.T) {
	t.Run("well-formed persian response", func(t *testing.T) {
		text := "استان: تهران\n" +
			"شهر: تهران\n" +
			"منطقه: منطقه ۶\n" +
			"محله: یوسف‌آباد\n" +
			"خیابان: خیابان ولیعصر، کوچه ۱۲\n" +
			"پلاک/ساختمان: پلاک ۴۵\n" +
			"کدپستی: 1234567890\n" +
			"آدرس کامل: تهران، خیابان ولیعصر، کوچه ۱۲، پلاک ۴۵"

		got := newParser(t, "fa").Parse(text)

		want := models.AddressDetails{
			FullAddress:      "تهران، خیابان ولیعصر، کوچه ۱۲، پلاک ۴۵",
			Road:             "خیابان ولیعصر، کوچه ۱۲",
			Neighbourhood:    "یوسف‌آباد",
			District:         "منطقه ۶",
			City:             "تهران",
			State:            "تهران",
			Postcode:         "1234567890",
			Building:         "پلاک ۴۵",
			FormattedDisplay: text,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("full address falls back to the first raw line", func(t *testing.T) {
		text := "  Somewhere near Azadi Tower  \nCity: Tehran\nPostcode: 1234567890"

		got := newParser(t, "en").Parse(text)

		assert.Equal(t, "  Somewhere near Azadi Tower  ", got.FullAddress)
		assert.Equal(t, "Tehran", got.City)
		assert.Equal(t, text, got.FormattedDisplay)
	})

	t.Run("full address fallback skips leading blank lines", func(t *testing.T) {
		text := "\n  \nشهر: تهران\nکدپستی: 1234567890"

		got := newParser(t, "fa").Parse(text)

		assert.Equal(t, "شهر: تهران", got.FullAddress)
		assert.Equal(t, "تهران", got.City)
		assert.Equal(t, "1234567890", got.Postcode)
		assert.Equal(t, text, got.FormattedDisplay)
	})

	t.Run("blank text has no full address", func(t *testing.T) {
		got := newParser(t, "en").Parse("\n \n\t")

		assert.Empty(t, got.FullAddress)
	})

	t.Run("labels match case-insensitively and values are trimmed", func(t *testing.T) {
		got := newParser(t, "en").Parse("city:    Shiraz   \nPOSTCODE:\t7134567890\r\nFull Address: Shiraz, Fars")

		assert.Equal(t, "Shiraz", got.City)
		assert.Equal(t, "7134567890", got.Postcode)
		assert.Equal(t, "Shiraz, Fars", got.FullAddress)
	})

	t.Run("value stops at the end of the line", func(t *testing.T) {
		got := newParser(t, "en").Parse("City:\nRoad: Valiasr")

		assert.Empty(t, got.City)
		assert.Equal(t, "Valiasr", got.Road)
		assert.Equal(t, "City:", got.FullAddress)
	})

	t.Run("malformed lines leave fields absent", func(t *testing.T) {
		text := "City - Tehran\nRoad Valiasr\n: orphan value\nPostcode ; 123"

		got := newParser(t, "en").Parse(text)

		assert.Empty(t, got.City)
		assert.Empty(t, got.Road)
		assert.Empty(t, got.Postcode)
		assert.Equal(t, "City - Tehran", got.FullAddress)
	})

	t.Run("persian digits in postcode are normalized", func(t *testing.T) {
		got := newParser(t, "fa").Parse("کدپستی: ۱۲۳۴۵۶۷۸۹۰")

		assert.Equal(t, "1234567890", got.Postcode)
	})

	t.Run("empty text", func(t *testing.T) {
		got := newParser(t, "fa").Parse("")

		assert.Equal(t, models.AddressDetails{}, got)
	})
}

func TestLabelParser_FieldsIsTotal(t *testing.T) {
	parser := newParser(t, "fa")
	inputs := []string{
		"",
		"\n\n\n",
		"شهر",
		"شهر:",
		"::::",
		"شهر: تهران: ایران",
		"(((",
		"\x00\xff",
		"کدپستی: \n\nآدرس کامل:",
	}

	for _, input := range inputs {
		assert.NotPanics(t, func() {
			fields := parser.Fields(input)
			for field, value := range fields {
				assert.NotEmpty(t, value, "field %s", field)
			}
		})
	}

	assert.Equal(t, map[models.Field]string{models.FieldCity: "تهران: ایران"}, parser.Fields("شهر: تهران: ایران"))
}
