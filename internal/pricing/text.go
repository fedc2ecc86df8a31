package pricing

import (
	"strings"

	"golang.org/x/text/width"
)

// 等幅表示でのセル幅。全角は2。
func runeCells(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		n += runeCells(r)
	}
	return n
}

// 幅に収まらない分は切り捨て（折り返さない）。
func Truncate(s string, cells int) string {
	if cells <= 0 {
		return ""
	}
	if DisplayWidth(s) <= cells {
		return s
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := runeCells(r)
		if used+w > cells {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String()
}

// 左寄せ
func PadEnd(s string, cells int) string {
	s = Truncate(s, cells)
	return s + strings.Repeat(" ", cells-DisplayWidth(s))
}

// 右寄せ。数値の列で使うので、幅を超えても切らずにはみ出させる。
func PadStart(s string, cells int) string {
	if n := cells - DisplayWidth(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}
