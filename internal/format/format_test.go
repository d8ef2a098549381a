package format_test

import (
	"testing"
	"time"

	"mini-crm/internal/format"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	testCases := []struct {
		value    float64
		expected string
	}{
		{15000, "R$ 15.000,00"},
		{0, "R$ 0,00"},
		{999.5, "R$ 999,50"},
		{1234567.891, "R$ 1.234.567,89"},
		{-1, "-R$ 1,00"},
		{0.05, "R$ 0,05"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, format.FormatCurrency(tc.value))
	}
}

func TestParseCurrency(t *testing.T) {
	testCases := []struct {
		input    string
		expected float64
	}{
		{"15000", 15000},
		{"15000.50", 15000.5},
		{"15.000,50", 15000.5},
		{"R$ 15.000,00", 15000},
		{"15.000", 15000},
		{"1.234.567", 1234567},
		{"12.5", 12.5},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			value, err := format.ParseCurrency(tc.input)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, value, 0.001)
		})
	}

	_, err := format.ParseCurrency("  ")
	assert.Error(t, err)
	_, err = format.ParseCurrency("abc")
	assert.Error(t, err)
}

func TestFormatCurrency_RoundTrip(t *testing.T) {
	value, err := format.ParseCurrency(format.FormatCurrency(98765.43))
	require.NoError(t, err)
	assert.InDelta(t, 98765.43, value, 0.001)
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(11) 3333-4444", format.FormatPhone("1133334444"))
	assert.Equal(t, "(11) 99999-8888", format.FormatPhone("11999998888"))
	assert.Equal(t, "(11) 99999-8888", format.FormatPhone("(11) 99999-8888"))
	assert.Equal(t, "(11) 9999-", format.FormatPhone("119999"))
	assert.Equal(t, "1199", format.FormatPhone("1199"))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC)

	assert.Equal(t, "05/03/2024", format.FormatDate(ts))
	assert.Equal(t, "05/03/2024 14:07", format.FormatDateTime(ts))
	assert.Equal(t, "-", format.FormatDate(time.Time{}))
	assert.Equal(t, "-", format.FormatDateTime(time.Time{}))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, format.ValidateEmail("ana@empresa.com.br"))
	assert.False(t, format.ValidateEmail("ana@empresa"))
	assert.False(t, format.ValidateEmail("ana empresa@x.com"))
	assert.False(t, format.ValidateEmail(""))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, format.ValidatePhone("(11) 3333-4444"))
	assert.True(t, format.ValidatePhone("11999998888"))
	assert.False(t, format.ValidatePhone("999"))
	assert.False(t, format.ValidatePhone("119999988887"))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Qualificado", format.StatusLabel("qualificado"))
	assert.Equal(t, "Em Negociação", format.StatusLabel("negociacao"))
	assert.Equal(t, "arquivado", format.StatusLabel("arquivado"))

	assert.Equal(t, "#22c55e", format.StatusColor("ganho"))
	assert.Equal(t, format.DefaultColor, format.StatusColor("arquivado"))

	assert.Equal(t, "Mídia Social", format.SourceLabel("midia-social"))
	assert.Equal(t, "podcast", format.SourceLabel("podcast"))
	assert.Equal(t, "Reunião", format.InteractionLabel("reuniao"))
}

func TestParseStatusAndSource(t *testing.T) {
	status, ok := format.ParseStatus("Proposta Enviada")
	assert.True(t, ok)
	assert.Equal(t, "proposta", status)

	status, ok = format.ParseStatus(" GANHO ")
	assert.True(t, ok)
	assert.Equal(t, "ganho", status)

	_, ok = format.ParseStatus("arquivado")
	assert.False(t, ok)

	source, ok := format.ParseSource("indicação")
	assert.True(t, ok)
	assert.Equal(t, "indicacao", source)
}
