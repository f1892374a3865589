package cnab

import "time"

// Сообщения бизнес-правил
const (
	msgInvalidType  = "invalid transaction type"
	msgNonPositive  = "amount must be greater than 0"
	msgFutureDate   = "date cannot be in the future"
)

// Validator применяет бизнес-правила к разобранной записи
type Validator struct {
	now func() time.Time
}

// NewValidator создает Validator с системными часами
func NewValidator() *Validator {
	return &Validator{now: time.Now}
}

// NewValidatorAt создает Validator с фиксированными часами (для тестов)
func NewValidatorAt(now func() time.Time) *Validator {
	return &Validator{now: now}
}

// ValidateRecord проверяет запись и возвращает все нарушения разом.
// Правила независимы: ошибки накапливаются, а не прерывают проверку.
// Нижней границы даты нет — сколь угодно старые операции допустимы
func (v *Validator) ValidateRecord(rec *Record) []string {
	var errs []string

	if !rec.Type.Valid() {
		errs = append(errs, msgInvalidType)
	}

	if rec.AmountCents <= 0 {
		errs = append(errs, msgNonPositive)
	}

	if rec.OccurredOn.After(v.now().UTC()) {
		errs = append(errs, msgFutureDate)
	}

	return errs
}
