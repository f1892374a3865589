package cnab

import (
	"testing"
	"time"

	"github.com/avc/cnab-ledger/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestValidator() *Validator {
	return NewValidatorAt(func() time.Time { return testNow })
}

func validRecord() *Record {
	return &Record{
		Type:          domain.TypeCredit,
		OccurredOn:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		OccurredAt:    "10:30:00",
		AmountCents:   12345,
		PayerDocument: "12345678901",
		CardNumber:    "123456789012",
		StoreOwner:    "OWNER NAME",
		StoreName:     "STORE MAIN",
	}
}

func TestValidator_ValidRecord(t *testing.T) {
	v := newTestValidator()

	errs := v.ValidateRecord(validRecord())
	assert.Empty(t, errs)
}

func TestValidator_InvalidType(t *testing.T) {
	v := newTestValidator()

	rec := validRecord()
	rec.Type = 0

	errs := v.ValidateRecord(rec)
	require.Len(t, errs, 1)
	assert.Equal(t, "invalid transaction type", errs[0])
}

func TestValidator_ZeroAmount(t *testing.T) {
	v := newTestValidator()

	// Нулевая сумма отклоняется независимо от типа операции
	for code := 1; code <= 9; code++ {
		rec := validRecord()
		rec.Type = domain.TransactionType(code)
		rec.AmountCents = 0

		errs := v.ValidateRecord(rec)
		require.Len(t, errs, 1, "type %d", code)
		assert.Equal(t, "amount must be greater than 0", errs[0])
	}
}

func TestValidator_FutureDate(t *testing.T) {
	v := newTestValidator()

	rec := validRecord()
	rec.OccurredOn = testNow.AddDate(2, 0, 0)

	errs := v.ValidateRecord(rec)
	require.Len(t, errs, 1)
	assert.Equal(t, "date cannot be in the future", errs[0])
}

func TestValidator_ArbitrarilyOldDateAccepted(t *testing.T) {
	v := newTestValidator()

	rec := validRecord()
	rec.OccurredOn = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, v.ValidateRecord(rec))
}

func TestValidator_AccumulatesAllViolations(t *testing.T) {
	v := newTestValidator()

	rec := validRecord()
	rec.Type = 0
	rec.AmountCents = 0
	rec.OccurredOn = testNow.AddDate(0, 0, 1)

	errs := v.ValidateRecord(rec)
	require.Len(t, errs, 3)
	assert.Equal(t, []string{
		"invalid transaction type",
		"amount must be greater than 0",
		"date cannot be in the future",
	}, errs)
}
