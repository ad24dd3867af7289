// Package localtime реализует арифметику локального времени поверх строкового
// представления "YYYY-MM-DDTHH:MM" без каких-либо преобразований часовых поясов.
// Все расчёты слотов и интервалов в системе выполняются в этом формате; единственная
// точка перехода к абсолютному времени - ToInstant (для проверки дедлайна отмены).
package localtime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Форматы строковых представлений
const (
	DateFormat  = "2006-01-02"       // YYYY-MM-DD
	LocalFormat = "2006-01-02T15:04" // YYYY-MM-DDTHH:MM
)

// ErrMalformedTimestamp возвращается при структурно некорректном входе
// (отсутствующие разделители, нечисловые поля, выход за границы)
var ErrMalformedTimestamp = errors.New("localtime: malformed timestamp")

// Split разбивает локальную метку "YYYY-MM-DDTHH:MM" на дату и время
func Split(local string) (date string, hhmm string, err error) {
	parts := strings.SplitN(local, "T", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: missing 'T' separator in %q", ErrMalformedTimestamp, local)
	}
	if _, err := parseDate(parts[0]); err != nil {
		return "", "", err
	}
	if _, err := TimeToMinutes(parts[1]); err != nil {
		return "", "", err
	}
	return parts[0], parts[1], nil
}

// Join собирает локальную метку из даты и времени
func Join(date string, hhmm string) string {
	return date + "T" + hhmm
}

// AddMinutes прибавляет минуты к локальной метке "YYYY-MM-DDTHH:MM".
// Перенос через полночь переносит и дату.
func AddMinutes(local string, minutes int) (string, error) {
	date, hhmm, err := Split(local)
	if err != nil {
		return "", err
	}

	dayMins, err := TimeToMinutes(hhmm)
	if err != nil {
		return "", err
	}

	total := dayMins + minutes
	days := total / (24 * 60)
	rem := total % (24 * 60)
	if rem < 0 {
		days--
		rem += 24 * 60
	}

	if days != 0 {
		d, err := parseDate(date)
		if err != nil {
			return "", err
		}
		date = d.AddDate(0, 0, days).Format(DateFormat)
	}

	return Join(date, MinutesToTime(rem)), nil
}

// Weekday возвращает день недели (0=воскресенье .. 6=суббота) для даты "YYYY-MM-DD".
// День недели вычисляется от полудня, чтобы переводы часов не смещали дату.
func Weekday(date string) (int, error) {
	d, err := parseDate(date)
	if err != nil {
		return 0, err
	}
	noon := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC)
	return int(noon.Weekday()), nil
}

// TimeToMinutes переводит "HH:MM" в минуты с начала суток
func TimeToMinutes(hhmm string) (int, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: expected HH:MM, got %q", ErrMalformedTimestamp, hhmm)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric hour in %q", ErrMalformedTimestamp, hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric minute in %q", ErrMalformedTimestamp, hhmm)
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: time out of range in %q", ErrMalformedTimestamp, hhmm)
	}

	return h*60 + m, nil
}

// MinutesToTime переводит минуты с начала суток в "HH:MM"
func MinutesToTime(mins int) string {
	h := mins / 60
	m := mins % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}

// ToInstant переводит локальную метку в абсолютный момент времени по фиксированному
// смещению UTC вида "+03:00". Единственная функция пакета, работающая с часовыми поясами.
func ToInstant(local string, utcOffset string) (time.Time, error) {
	if _, _, err := Split(local); err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse("2006-01-02T15:04:05Z07:00", local+":00"+utcOffset)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q with offset %q", ErrMalformedTimestamp, local, utcOffset)
	}
	return t, nil
}

// parseDate строго парсит дату "YYYY-MM-DD"
func parseDate(date string) (time.Time, error) {
	d, err := time.Parse(DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected YYYY-MM-DD, got %q", ErrMalformedTimestamp, date)
	}
	return d, nil
}
