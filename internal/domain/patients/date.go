package patients

import (
	"errors"
	"strings"
)

var (
	// ErrMalformedDate: la entrada no tiene la forma textual del date-picker
	// ("Mon Mar 04 1990"). Preferimos cortar acá antes que adivinar.
	ErrMalformedDate = errors.New("malformed date input")

	// ErrUnknownMonth: abreviatura de mes fuera de Jan..Dec. El valor devuelto
	// igual lleva el segmento literal "ERROR", porque hay datos ya guardados
	// con esa forma y el formato tiene que coincidir.
	ErrUnknownMonth = errors.New("unknown month abbreviation")
)

// monthCodes mapea las doce abreviaturas inglesas de mes a su código.
var monthCodes = map[string]string{
	"Jan": "01", "Feb": "02", "Mar": "03", "Apr": "04",
	"May": "05", "Jun": "06", "Jul": "07", "Aug": "08",
	"Sep": "09", "Oct": "10", "Nov": "11", "Dec": "12",
}

// NormalizeDate convierte la forma textual del date-picker ("Mon Mar 04 1990")
// a YYYY-MM-DD. Entrada vacía significa "sin fecha" y devuelve ("", nil).
//
// Si el mes no es una abreviatura conocida devuelve el valor con el segmento
// "ERROR" junto con ErrUnknownMonth: el caller puede persistirlo igual
// (comportamiento histórico) o reportarlo. Día y año pasan tal cual, sin
// validar rango (día 32 no se rechaza). Función pura, sin efectos.
func NormalizeDate(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}

	parts := strings.Fields(raw)
	if len(parts) < 4 {
		return "", ErrMalformedDate
	}

	month, known := monthCodes[parts[1]]
	if !known {
		month = "ERROR"
	}

	simplified := parts[3] + "-" + month + "-" + parts[2]
	if !known {
		return simplified, ErrUnknownMonth
	}
	return simplified, nil
}
