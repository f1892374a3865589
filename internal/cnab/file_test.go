package cnab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileParser_AllValid(t *testing.T) {
	p := NewFileParser(newTestValidator())

	content := strings.Join([]string{
		buildLine("1", "20240101", "0000012345", "12345678901", "123456789012", "103000", "OWNER NAME", "STORE MAIN"),
		buildLine("2", "20240102", "0000005000", "12345678901", "123456789012", "110000", "OWNER NAME", "STORE MAIN"),
		buildLine("4", "20240103", "0000000100", "98765432100", "210987654321", "120000", "MARIA SILVA", "MERCADO CENTRAL"),
	}, "\n") + "\n"

	result, err := p.Parse(strings.NewReader(content))
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Records, 3)
	assert.Equal(t, "MERCADO CENTRAL", result.Records[2].StoreName)
}

func TestFileParser_OneBadLineRejectsFile(t *testing.T) {
	p := NewFileParser(newTestValidator())

	content := strings.Join([]string{
		buildLine("1", "20240101", "0000012345", "12345678901", "123456789012", "103000", "OWNER NAME", "STORE MAIN"),
		"too short",
		buildLine("4", "20240103", "0000000100", "98765432100", "210987654321", "120000", "MARIA SILVA", "MERCADO CENTRAL"),
	}, "\n")

	result, err := p.Parse(strings.NewReader(content))
	require.NoError(t, err)

	// Файл невалиден целиком, но валидные записи сохранены
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Line 2: Invalid length", result.Errors[0])
	assert.Len(t, result.Records, 2)
}

func TestFileParser_ErrorsOrderedByLine(t *testing.T) {
	p := NewFileParser(newTestValidator())

	content := strings.Join([]string{
		buildLine("0", "20240101", "0000012345", "12345678901", "123456789012", "103000", "OWNER", "STORE"),
		buildLine("1", "20240101", "0000000000", "12345678901", "123456789012", "103000", "OWNER", "STORE"),
		"bad",
	}, "\n")

	result, err := p.Parse(strings.NewReader(content))
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Equal(t, []string{
		"Line 1: invalid transaction type",
		"Line 2: amount must be greater than 0",
		"Line 3: Invalid length",
	}, result.Errors)
	assert.Empty(t, result.Records)
}

func TestFileParser_CRLFLines(t *testing.T) {
	p := NewFileParser(newTestValidator())

	content := buildLine("1", "20240101", "0000012345", "12345678901", "123456789012", "103000", "OWNER NAME", "STORE MAIN") + "\r\n" +
		buildLine("9", "20240102", "0000005000", "12345678901", "123456789012", "110000", "OWNER NAME", "STORE MAIN") + "\r\n"

	result, err := p.Parse(strings.NewReader(content))
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Len(t, result.Records, 2)

	// Тип 9 — исходящая операция
	assert.Equal(t, int64(-5000), result.Records[1].SignedAmountCents())
}

func TestFileParser_MultipleViolationsOnOneLine(t *testing.T) {
	p := NewFileParser(newTestValidator())

	content := buildLine("0", "20990101", "0000000000", "12345678901", "123456789012", "103000", "OWNER", "STORE")

	result, err := p.Parse(strings.NewReader(content))
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Equal(t, []string{
		"Line 1: invalid transaction type",
		"Line 1: amount must be greater than 0",
		"Line 1: date cannot be in the future",
	}, result.Errors)
}

func TestFileParser_LongLineDoesNotAbortScan(t *testing.T) {
	// Строка длиннее дефолтного буфера bufio.Scanner, но в пределах лимита:
	// обычная невалидная длина, скан продолжается
	p := NewFileParser(newTestValidator())

	content := strings.Repeat("1", 70_000) + "\n" +
		buildLine("1", "20240101", "0000012345", "12345678901", "123456789012", "103000", "OWNER NAME", "STORE MAIN")

	result, err := p.Parse(strings.NewReader(content))
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Equal(t, []string{"Line 1: Invalid length"}, result.Errors)
	assert.Len(t, result.Records, 1)
}

func TestFileParser_OversizedLineRejectsFile(t *testing.T) {
	// Строка за пределом лимита чтения: файл отклоняется построчной
	// ошибкой, а не ошибкой чтения
	p := NewFileParser(newTestValidator())

	content := buildLine("1", "20240101", "0000012345", "12345678901", "123456789012", "103000", "OWNER NAME", "STORE MAIN") +
		"\n" + strings.Repeat("5", maxLineBytes+1)

	result, err := p.Parse(strings.NewReader(content))
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Equal(t, []string{"Line 2: Invalid length"}, result.Errors)
	assert.Len(t, result.Records, 1)
}

func TestFileParser_EmptyFile(t *testing.T) {
	p := NewFileParser(newTestValidator())

	result, err := p.Parse(strings.NewReader(""))
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Records)
	assert.Empty(t, result.Errors)
}
