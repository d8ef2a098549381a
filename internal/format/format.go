// Package format содержит функции форматирования и валидации, используемые
// при отображении, экспорте и импорте лидов.
package format

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const emptyValue = "-"

var (
	nonDigits      = regexp.MustCompile(`\D`)
	landlinePhone  = regexp.MustCompile(`(\d{2})(\d{4})(\d{0,4})`)
	mobilePhone    = regexp.MustCompile(`(\d{2})(\d{5})(\d{0,4})`)
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	errEmptyAmount = errors.New("empty amount")
)

// Digits оставляет в строке только цифры.
func Digits(value string) string {
	return nonDigits.ReplaceAllString(value, "")
}

// FormatPhone применяет маску (DD) DDDD-DDDD или (DD) DDDDD-DDDD.
func FormatPhone(value string) string {
	numbers := Digits(value)
	if len(numbers) <= 10 {
		return replaceFirst(landlinePhone, numbers, "($1) $2-$3")
	}
	return replaceFirst(mobilePhone, numbers, "($1) $2-$3")
}

func replaceFirst(re *regexp.Regexp, src, template string) string {
	loc := re.FindStringSubmatchIndex(src)
	if loc == nil {
		return src
	}
	out := re.ExpandString(nil, template, src, loc)
	return src[:loc[0]] + string(out) + src[loc[1]:]
}

// FormatCurrency форматирует сумму в реалах: 15000 -> "R$ 15.000,00".
func FormatCurrency(value float64) string {
	cents := int64(math.Round(math.Abs(value) * 100))
	integer := strconv.FormatInt(cents/100, 10)

	var b strings.Builder
	if value < 0 && cents != 0 {
		b.WriteByte('-')
	}
	b.WriteString("R$ ")
	b.WriteString(groupThousands(integer))
	b.WriteByte(',')
	frac := cents % 100
	if frac < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(frac, 10))
	return b.String()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ParseCurrency разбирает сумму в форматах "15000", "15000.50", "15.000,50" и "R$ 15.000,50".
func ParseCurrency(value string) (float64, error) {
	s := strings.TrimSpace(value)
	s = strings.TrimPrefix(s, "R$")
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\u00a0' {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return 0, errEmptyAmount
	}

	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	case strings.Count(s, ".") == 1:
		if dot := strings.IndexByte(s, '.'); len(s)-dot-1 == 3 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	return strconv.ParseFloat(s, 64)
}

// FormatDate форматирует дату как dd/mm/yyyy. Нулевое время отображается как "-".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return emptyValue
	}
	return t.Format("02/01/2006")
}

// FormatDateTime форматирует дату и время как dd/mm/yyyy hh:mm.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return emptyValue
	}
	return t.Format("02/01/2006 15:04")
}

// ValidateEmail проверяет базовый формат адреса.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePhone проверяет, что номер содержит 10 или 11 цифр.
func ValidatePhone(phone string) bool {
	n := len(Digits(phone))
	return n >= 10 && n <= 11
}
