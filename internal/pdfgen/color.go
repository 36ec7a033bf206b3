package pdfgen

import "strconv"

// defaultHeaderColor is used when the business profile carries no color or
// an unparseable one.
const defaultHeaderColor = "#0064C8"

// parseHexColor converts "#RRGGBB" to its RGB components. Anything that
// does not parse falls back to the default header blue.
func parseHexColor(s string) (r, g, b int) {
	if len(s) != 7 || s[0] != '#' {
		s = defaultHeaderColor
	}
	rv, err1 := strconv.ParseUint(s[1:3], 16, 8)
	gv, err2 := strconv.ParseUint(s[3:5], 16, 8)
	bv, err3 := strconv.ParseUint(s[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return parseHexColor(defaultHeaderColor)
	}
	return int(rv), int(gv), int(bv)
}
