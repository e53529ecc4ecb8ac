package transform

import (
	"regexp"
	"strconv"
)

var (
	reTransformName  = regexp.MustCompile(`matrix|translate|scale|rotate|skewX|skewY`)
	reTransformSplit = regexp.MustCompile(`\s*(matrix|translate|scale|rotate|skewX|skewY)\s*\(\s*(.+?)\s*\)[\s,]*`)
	reNumber         = regexp.MustCompile(`[-+]?(?:\d*\.\d+|\d+\.?)(?:[eE][-+]?\d+)?`)
)

// token is one piece of split transform text: either a function name or a
// run of raw argument text.
type token struct {
	name string
	text string
}

// Parse converts transform attribute text such as
// "translate(10,50) scale(2) rotate(-45)" into its primitives.
//
// Parse never fails loudly. Text that cannot be read as a whole, such as
// an argument list without numbers or numbers before the first function
// name, yields an empty list, which callers treat as "nothing to apply".
func Parse(text string) []Primitive {
	tokens, ok := splitTransform(text)
	if !ok {
		Logger().Debug("transform: rejected malformed transform", "text", text)
		return nil
	}

	var list []Primitive
	for _, tok := range tokens {
		if list, ok = appendToken(list, tok); !ok {
			Logger().Debug("transform: rejected malformed transform", "text", text)
			return nil
		}
	}
	for _, p := range list {
		if len(p.Data) == 0 {
			Logger().Debug("transform: primitive without arguments", "text", text, "kind", p.Kind)
			return nil
		}
	}
	return list
}

// appendToken folds one token into the list. The open primitive, which
// receives argument numbers, is always the last element of list.
func appendToken(list []Primitive, tok token) ([]Primitive, bool) {
	if tok.name != "" {
		kind, _ := ParseKind(tok.name)
		return append(list, Primitive{Kind: kind}), true
	}

	nums := reNumber.FindAllString(tok.text, -1)
	if len(nums) == 0 {
		return list, true
	}
	if len(list) == 0 {
		return list, false
	}

	open := list[len(list)-1]
	data := append([]float64(nil), open.Data...)
	for _, s := range nums {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return list, false
		}
		data = append(data, v)
	}
	open.Data = data
	list[len(list)-1] = open
	return list, true
}

// splitTransform splits text into name and argument tokens. Text between
// recognized calls becomes an argument token of its own, so stray numbers
// attach to the preceding function. A function name that did not form a
// valid call makes the whole input malformed and ok is false.
func splitTransform(text string) (tokens []token, ok bool) {
	last := 0
	for _, loc := range reTransformSplit.FindAllStringSubmatchIndex(text, -1) {
		if !isPlainGap(text[last:loc[0]]) {
			return nil, false
		}
		tokens = append(tokens,
			token{text: text[last:loc[0]]},
			token{name: text[loc[2]:loc[3]]},
			token{text: text[loc[4]:loc[5]]},
		)
		last = loc[1]
	}
	if !isPlainGap(text[last:]) {
		return nil, false
	}
	return append(tokens, token{text: text[last:]}), true
}

func isPlainGap(s string) bool {
	return !reTransformName.MatchString(s)
}
