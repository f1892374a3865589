package cnab

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/avc/cnab-ledger/internal/domain"
)

// LineLength длина строки CNAB в байтах
const LineLength = 80

// Границы полей внутри 80-байтовой строки.
// Документация формата дает ширину поля названия магазина как 19 символов,
// но тогда сумма ширин равна 81: фактически поле занимает хвост строки
// со смещения 62, то есть 18 символов
const (
	typeStart    = 0
	dateStart    = 1
	amountStart  = 9
	payerStart   = 19
	cardStart    = 30
	timeStart    = 42
	ownerStart   = 48
	storeStart   = 62
)

// Record представляет разобранную строку CNAB
type Record struct {
	Type          domain.TransactionType
	OccurredOn    time.Time // Дата операции, полночь UTC
	OccurredAt    string    // Время операции в формате HH:MM:SS
	AmountCents   int64
	PayerDocument string
	CardNumber    string
	StoreOwner    string // Без хвостовых пробелов
	StoreName     string // Без хвостовых пробелов
}

// SignedAmountCents возвращает сумму со знаком направления операции
func (r *Record) SignedAmountCents() int64 {
	signed, _ := r.Type.SignedAmount(r.AmountCents)
	return signed
}

// LineError представляет ошибку разбора или валидации одной строки
type LineError struct {
	Line    int // Номер строки, начиная с 1
	Message string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Message)
}

// NewLineError создает ошибку, привязанную к номеру строки
func NewLineError(line int, message string) *LineError {
	return &LineError{Line: line, Message: message}
}

// ParseLine разбирает одну строку CNAB фиксированной ширины.
// Бизнес-правила здесь не проверяются: парсер отвечает только за формат
func ParseLine(line string, lineNumber int) (*Record, error) {
	if len(line) != LineLength {
		return nil, NewLineError(lineNumber, "Invalid length")
	}

	typeField := line[typeStart:dateStart]
	if !isDigits(typeField) {
		return nil, NewLineError(lineNumber, "Invalid transaction type format")
	}
	typeCode, _ := strconv.Atoi(typeField)

	occurredOn, err := parseDate(line[dateStart:amountStart])
	if err != nil {
		return nil, NewLineError(lineNumber, "Invalid date format")
	}

	amountField := line[amountStart:payerStart]
	if !isDigits(amountField) {
		return nil, NewLineError(lineNumber, "Invalid amount format")
	}
	amountCents, err := strconv.ParseInt(amountField, 10, 64)
	if err != nil {
		return nil, NewLineError(lineNumber, "Invalid amount format")
	}

	occurredAt, err := parseClock(line[timeStart:ownerStart])
	if err != nil {
		return nil, NewLineError(lineNumber, "Invalid time format")
	}

	return &Record{
		Type:          domain.TransactionType(typeCode),
		OccurredOn:    occurredOn,
		OccurredAt:    occurredAt,
		AmountCents:   amountCents,
		PayerDocument: line[payerStart:cardStart],
		CardNumber:    line[cardStart:timeStart],
		StoreOwner:    strings.TrimSpace(line[ownerStart:storeStart]),
		StoreName:     strings.TrimSpace(line[storeStart:]),
	}, nil
}

// parseDate разбирает дату формата YYYYMMDD с проверкой календаря
func parseDate(s string) (time.Time, error) {
	if !isDigits(s) {
		return time.Time{}, fmt.Errorf("parser: date is not numeric: %q", s)
	}

	d, err := time.ParseInLocation("20060102", s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parser: invalid calendar date %q: %w", s, err)
	}

	return d, nil
}

// parseClock разбирает время формата HHMMSS с проверкой диапазонов
func parseClock(s string) (string, error) {
	if !isDigits(s) {
		return "", fmt.Errorf("parser: time is not numeric: %q", s)
	}

	hour, _ := strconv.Atoi(s[0:2])
	minute, _ := strconv.Atoi(s[2:4])
	second, _ := strconv.Atoi(s[4:6])

	if hour > 23 || minute > 59 || second > 59 {
		return "", fmt.Errorf("parser: invalid clock value %q", s)
	}

	return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second), nil
}

func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
