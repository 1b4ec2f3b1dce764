package backtracking

// GenerateParentheses returns every well-formed string of n pairs of
// parentheses. An opening bracket is placed while fewer than n are open;
// a closing one while it would not unbalance the prefix.
func GenerateParentheses(n int) []string {
	var (
		out  []string
		buf  = make([]byte, 0, 2*n)
		walk func(open, closed int)
	)
	walk = func(open, closed int) {
		if len(buf) == 2*n {
			out = append(out, string(buf))
			return
		}
		if open < n {
			buf = append(buf, '(')
			walk(open+1, closed)
			buf = buf[:len(buf)-1]
		}
		if closed < open {
			buf = append(buf, ')')
			walk(open, closed+1)
			buf = buf[:len(buf)-1]
		}
	}
	if n > 0 {
		walk(0, 0)
	}

	return out
}

// keypad maps phone digits to their letters.
var keypad = map[byte]string{
	'2': "abc", '3': "def", '4': "ghi", '5': "jkl",
	'6': "mno", '7': "pqrs", '8': "tuv", '9': "wxyz",
}

// LetterCombinations returns every letter string a phone keypad could spell
// for digits (2-9). Empty input or any digit without letters yields nil.
func LetterCombinations(digits string) []string {
	if digits == "" {
		return nil
	}
	for i := 0; i < len(digits); i++ {
		if _, ok := keypad[digits[i]]; !ok {
			return nil
		}
	}
	var (
		out  []string
		buf  = make([]byte, 0, len(digits))
		walk func(i int)
	)
	walk = func(i int) {
		if i == len(digits) {
			out = append(out, string(buf))
			return
		}
		for _, ch := range []byte(keypad[digits[i]]) {
			buf = append(buf, ch)
			walk(i + 1)
			buf = buf[:len(buf)-1]
		}
	}
	walk(0)

	return out
}
