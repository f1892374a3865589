package domain

// TransactionType представляет однозначный код типа операции CNAB (1..9)
type TransactionType int

const (
	TypeDebit         TransactionType = 1
	TypeBoleto        TransactionType = 2
	TypeFinancing     TransactionType = 3
	TypeCredit        TransactionType = 4
	TypeLoanReceipt   TransactionType = 5
	TypeSales         TransactionType = 6
	TypeTEDReceipt    TransactionType = 7
	TypeDOCReceipt    TransactionType = 8
	TypeRent          TransactionType = 9
)

// Direction определяет знак операции
type Direction int

const (
	DirectionCredit Direction = 1
	DirectionDebit  Direction = -1
)

// Единственная таблица соответствия кода типа и направления.
// Балансовая логика нигде больше не дублирует эту классификацию
var transactionDirections = map[TransactionType]Direction{
	TypeDebit:       DirectionCredit,
	TypeBoleto:      DirectionDebit,
	TypeFinancing:   DirectionDebit,
	TypeCredit:      DirectionCredit,
	TypeLoanReceipt: DirectionCredit,
	TypeSales:       DirectionCredit,
	TypeTEDReceipt:  DirectionCredit,
	TypeDOCReceipt:  DirectionCredit,
	TypeRent:        DirectionDebit,
}

// Valid сообщает, входит ли код в допустимый диапазон 1..9
func (t TransactionType) Valid() bool {
	_, ok := transactionDirections[t]
	return ok
}

// Direction возвращает направление операции для валидного кода
func (t TransactionType) Direction() (Direction, bool) {
	d, ok := transactionDirections[t]
	return d, ok
}

// SignedAmount применяет знак направления к сумме в копейках/центах
func (t TransactionType) SignedAmount(amountCents int64) (int64, bool) {
	d, ok := transactionDirections[t]
	if !ok {
		return 0, false
	}
	return int64(d) * amountCents, true
}
