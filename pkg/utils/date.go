package utils

import (
	"fmt"
	"strings"
	"time"
)

// ISODateFromBR converte "dd/mm/yyyy" em "yyyy-mm-dd"; retorna vazio para formatos desconhecidos
func ISODateFromBR(value string) string {
	parsed, err := time.Parse("02/01/2006", strings.TrimSpace(value))
	if err != nil {
		return ""
	}
	return parsed.Format(time.DateOnly)
}

// ISODateFromParts monta "yyyy-mm-dd" a partir de campos separados
func ISODateFromParts(year, month, day int) string {
	if year <= 0 || month <= 0 || day <= 0 {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// ISODateTimeFromParts acrescenta "Thh:mm:00" quando a hora é conhecida
func ISODateTimeFromParts(year, month, day int, hour, minute *int) string {
	date := ISODateFromParts(year, month, day)
	if date == "" || hour == nil {
		return date
	}

	m := 0
	if minute != nil {
		m = *minute
	}
	return fmt.Sprintf("%sT%02d:%02d:00", date, *hour, m)
}

// DatePart descarta a parte de horário de um timestamp ISO
func DatePart(value string) string {
	date, _, _ := strings.Cut(strings.TrimSpace(value), "T")
	return date
}
