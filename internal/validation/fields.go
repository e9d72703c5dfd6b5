package validation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DatePattern определяет допустимый формат даты записи: YYYY-MM-DD
var DatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDate проверяет что дата задана и соответствует формату YYYY-MM-DD
func ValidateDate(date string) error {
	if date == "" {
		return fmt.Errorf("date cannot be empty")
	}
	if !DatePattern.MatchString(date) {
		return fmt.Errorf("date must be in YYYY-MM-DD format, got %q", date)
	}
	return nil
}

// NormalizeFieldValue нормализует сырое значение поля измерения.
// Пустая строка означает "не измерено": возвращается present=false без ошибки.
// Непустое значение должно парситься как конечное неотрицательное число.
func NormalizeFieldValue(raw string) (value float64, present bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}

	value, err = strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("value %q is not a number", raw)
	}

	// ParseFloat принимает "NaN" и "Inf", но такие значения не сериализуются
	// в JSON и не имеют смысла как измерения
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false, fmt.Errorf("value %q is not a finite number", raw)
	}

	if value < 0 {
		return 0, false, fmt.Errorf("value %q must not be negative", raw)
	}

	return value, true, nil
}
