package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func typeParams(count int) string {
	return prefixedStrings("T", count)
}

func packFields(count int) string {
	return prefixedStrings("a.Arg", count)
}

func argParams(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString("arg")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(" T")
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

var arityWords = map[int]string{
	2: "two",
	3: "three",
	4: "four",
	5: "five",
	6: "six",
	7: "seven",
	8: "eight",
}

func arityWord(count int) string {
	if w, ok := arityWords[count]; ok {
		return w
	}
	return strconv.Itoa(count)
}
