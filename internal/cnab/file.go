package cnab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Предел длины одной строки при чтении. Любая строка длиннее валидной
// на порядки, но файл без переводов строк должен отклоняться как
// невалидный, а не как сбой чтения
const maxLineBytes = 1 << 20

// FileResult представляет итог разбора и валидации файла целиком
type FileResult struct {
	Valid   bool
	Records []*Record
	Errors  []string
}

// FileParser прогоняет парсер и валидатор по всем строкам файла
type FileParser struct {
	validator *Validator
}

// NewFileParser создает FileParser
func NewFileParser(validator *Validator) *FileParser {
	return &FileParser{validator: validator}
}

// Parse читает файл построчно (LF или CRLF) и собирает валидные записи
// и все ошибки. Скан не прерывается на первой плохой строке: ошибки
// накапливаются в порядке номеров строк. Файл валиден, только если
// список ошибок пуст — одна плохая строка отклоняет весь файл,
// но валидные записи при этом сохраняются в результате
func (p *FileParser) Parse(r io.Reader) (*FileResult, error) {
	result := &FileResult{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		rec, err := ParseLine(line, lineNumber)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			continue
		}

		if violations := p.validator.ValidateRecord(rec); len(violations) > 0 {
			for _, msg := range violations {
				result.Errors = append(result.Errors, NewLineError(lineNumber, msg).Error())
			}
			continue
		}

		result.Records = append(result.Records, rec)
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			// Строка за пределом буфера: та же невалидная длина,
			// только обнаруженная до разбора
			result.Errors = append(result.Errors, NewLineError(lineNumber+1, "Invalid length").Error())
		} else {
			return nil, fmt.Errorf("cnab: failed to read file contents: %w", err)
		}
	}

	result.Valid = len(result.Errors) == 0

	return result, nil
}
