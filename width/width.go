package width

// StringWidth sums RuneWidth over every codepoint decodable from s,
// skipping bytes that fail to decode (§4.1).
func StringWidth(s string) int {
	b := []byte(s)
	total := 0
	for pos := 0; pos < len(b); {
		cp, n, ok := Decode(b, pos)
		if !ok {
			pos++
			continue
		}
		total += RuneWidth(cp)
		pos += n
	}
	return total
}
