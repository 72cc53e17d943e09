package matcher

// Tokenize splits text into lowercase tokens. Every maximal run of ASCII
// letters and digits is one token; everything else separates tokens.
func Tokenize(text string) []string {
	tokens := make([]string, 0)
	start := -1
	for i := 0; i < len(text); i++ {
		if isAlnum(text[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, lower(text[start:i]))
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, lower(text[start:]))
	}
	return tokens
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// lower folds ASCII only; tokens never contain other bytes.
func lower(s string) string {
	buf := []byte(s)
	for i, b := range buf {
		if b >= 'A' && b <= 'Z' {
			buf[i] = b + ('a' - 'A')
		}
	}
	return string(buf)
}
