package logic

import (
	"strings"
	"unicode"
)

// joinFormulas renders the operands of an n-ary connective.
// A single operand is rendered bare, without the connective or parentheses.
func joinFormulas(ss []Sentence, sep string) string {
	if len(ss) == 1 {
		return ss[0].Formula()
	}
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = parenthesize(s.Formula())
	}
	return strings.Join(parts, sep)
}

// parenthesize wraps s in parentheses unless it is empty, a bare symbol
// name, or already enclosed in one balanced outer pair.
func parenthesize(s string) string {
	if s == "" || isAlpha(s) {
		return s
	}
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") && len(s) >= 2 && balanced(s[1:len(s)-1]) {
		return s
	}
	return "(" + s + ")"
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// balanced reports whether every ')' in s closes an earlier '('
// and no '(' is left open.
func balanced(s string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth <= 0 {
				return false
			}
			depth--
		}
	}
	return depth == 0
}
