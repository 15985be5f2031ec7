package calc

import "strconv"

// FormatNumber renders a committed value for the display.
//
// Integral values have no decimal point ("2", not "2.0"). Other values use
// the shortest representation that round-trips, so there are never trailing
// zeros. Exponent notation is never used, and negative zero renders as "0".
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseOperand converts buffer text to a number. The buffer is only built
// from digits, one decimal point and formatted results, so it always parses.
func parseOperand(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
