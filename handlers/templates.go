package handlers

import (
	"fmt"
	"html/template"
)

// TemplateFuncMap holds the helpers shared by every page template.
func TemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"rupiah":  Rupiah,
		"percent": func(rate float64) string { return fmt.Sprintf("%g%%", rate*100) },
	}
}

// Rupiah formats a whole-rupiah amount with Indonesian thousand separators,
// e.g. 1000000 -> "Rp 1.000.000".
func Rupiah(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	s := fmt.Sprintf("%d", amount)
	out := ""
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out += "."
		}
		out += string(r)
	}
	if negative {
		return "-Rp " + out
	}
	return "Rp " + out
}
