package sexp

import "strconv"

// Source renderings of scalar literals. These match what the tokenizer
// accepts, so a converted value parses back to itself.

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// keep a float marker so the text re-tokenizes as a float
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return s
		}
	}
	return s + ".0"
}

func quoteString(s string) string {
	return strconv.Quote(s)
}
