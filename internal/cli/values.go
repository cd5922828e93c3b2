package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// parseValues reads a JSON array of numbers, or numbers separated by
// whitespace and commas. The separated form also accepts Inf and NaN.
func parseValues(input string) ([]float32, error) {
	input = strings.TrimSpace(input)
	if strings.HasPrefix(input, "[") {
		var numbers []*float64
		if err := json.Unmarshal([]byte(input), &numbers); err != nil {
			return nil, fmt.Errorf("parse JSON array: %w", err)
		}

		values := make([]float32, len(numbers))
		for i, n := range numbers {
			if n == nil {
				values[i] = float32(math.NaN())
				continue
			}
			values[i] = float32(*n)
		}

		return values, nil
	}

	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	values := make([]float32, 0, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 32)
		if err != nil && !isRangeError(err) {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		values = append(values, float32(v))
	}

	return values, nil
}

// isRangeError reports out-of-range input, which ParseFloat still maps to
// a signed infinity or zero.
func isRangeError(err error) bool {
	var numErr *strconv.NumError
	return errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange)
}

// writeJSON prints values as a JSON array, with null for non-finite values.
func writeJSON(w io.Writer, values []float32) error {
	numbers := make([]*float32, len(values))
	for i := range values {
		if math.IsInf(float64(values[i]), 0) || math.IsNaN(float64(values[i])) {
			continue
		}
		numbers[i] = &values[i]
	}

	data, err := json.Marshal(numbers)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

func writeLines(w io.Writer, values []float32) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(w, strconv.FormatFloat(float64(v), 'g', -1, 32)); err != nil {
			return err
		}
	}

	return nil
}
