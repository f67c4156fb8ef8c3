// Package datefmt normalizes the heterogeneous date strings accumulated in
// the insights collection into the single canonical "YYYYMMDD HHMMSS" form.
//
// 초기 운영 기간 동안 날짜가 수기로 입력되어 "2023년 1월 5일", "20230105",
// ISO 문자열 등이 섞여 있다. Normalize 는 어떤 입력이 와도 실패하지 않고
// 항상 정규형 문자열을 돌려준다. 복구 도구이지 검증기가 아니다.
package datefmt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layout is the canonical date layout every stored document converges to.
const Layout = "20060102 150405"

// Canonical reports whether s is already in canonical form.
func Canonical(s string) bool { return reCanonical.MatchString(s) }

var (
	reCanonical  = regexp.MustCompile(`^\d{8} \d{6}$`)
	reCompact    = regexp.MustCompile(`^\d{8}$`)
	reISOPrefix  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	reKoreanFull = regexp.MustCompile(`^(\d{4})\s*년\s*(\d{1,2})\s*월\s*(\d{1,2})\s*일[\s/]*(\d{1,2})\s*시\s*(\d{1,2})\s*분\s*(\d{1,2})\s*초$`)
	reKoreanDate = regexp.MustCompile(`^(\d{4})\s*년\s*(\d{1,2})\s*월\s*(\d{1,2})\s*일$`)
	reLooseYMD   = regexp.MustCompile(`(\d{4})\D{1,3}(\d{1,2})\D{1,3}(\d{1,2})`)
	reNonDigit   = regexp.MustCompile(`\D+`)
)

// parseLayouts are tried in order when an input looks like a machine format.
var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006.01.02",
	"2006/01/02",
}

// rule is one step of the normalization cascade: it either claims the input
// and produces a canonical string, or passes.
type rule struct {
	name  string
	apply func(s string) (string, bool)
}

// rules are evaluated in order; the first claiming rule wins. The order
// follows specificity: explicit Korean notation first, then already-compact
// forms, then machine formats, then salvage attempts.
var rules = []rule{
	{"korean-datetime", fromKoreanDateTime},
	{"korean-date", fromKoreanDate},
	{"canonical", fromCanonical},
	{"compact-date", fromCompactDate},
	{"machine", fromMachine},
	{"loose-ymd", fromLooseYMD},
	{"digit-salvage", fromDigitSalvage},
	{"generic", fromGeneric},
}

// Normalize maps an arbitrary stored date value to the canonical
// "YYYYMMDD HHMMSS" string. It never fails: inputs no rule can interpret
// resolve to the current wall-clock time, as do nil and empty values.
func Normalize(input any) string {
	switch v := input.(type) {
	case nil:
		return Format(time.Now())
	case time.Time:
		return Format(v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return Format(time.Now())
		}
		for _, r := range rules {
			if out, ok := r.apply(s); ok {
				return out
			}
		}
		return Format(time.Now())
	default:
		return Format(time.Now())
	}
}

// Format renders t in the canonical layout using t's own calendar fields.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// fromKoreanDateTime handles "2023년 1월 5일 / 9시 3분 7초" and its spacing
// variants. Components are re-padded directly, without a time.Time round
// trip, so the entered wall-clock values survive untouched.
func fromKoreanDateTime(s string) (string, bool) {
	m := reKoreanFull.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("%04d%02d%02d %02d%02d%02d",
		atoi(m[1]), atoi(m[2]), atoi(m[3]), atoi(m[4]), atoi(m[5]), atoi(m[6])), true
}

// fromKoreanDate handles the date-only variant; time defaults to midnight.
func fromKoreanDate(s string) (string, bool) {
	m := reKoreanDate.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("%04d%02d%02d 000000", atoi(m[1]), atoi(m[2]), atoi(m[3])), true
}

func fromCanonical(s string) (string, bool) {
	if !reCanonical.MatchString(s) {
		return "", false
	}
	return s, true
}

func fromCompactDate(s string) (string, bool) {
	if !reCompact.MatchString(s) {
		return "", false
	}
	return s + " 000000", true
}

// fromMachine claims ISO-looking strings (a "T" anywhere, or a leading
// YYYY-MM-DD). A claim that then fails to parse is passed on to the salvage
// rules instead of falling back to now().
func fromMachine(s string) (string, bool) {
	if !strings.Contains(s, "T") && !reISOPrefix.MatchString(s) {
		return "", false
	}
	t, err := parseAny(s)
	if err != nil {
		return "", false
	}
	return Format(t), true
}

// fromLooseYMD extracts the first year-month-day digit run separated by up
// to three non-digit characters, e.g. "작성일: 2023. 1. 5 (목)".
func fromLooseYMD(s string) (string, bool) {
	m := reLooseYMD.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	ymd := fmt.Sprintf("%04d%02d%02d", atoi(m[1]), atoi(m[2]), atoi(m[3]))
	if !validYMD(ymd) {
		return "", false
	}
	return ymd + " 000000", true
}

// fromDigitSalvage strips everything but digits and keeps the first eight
// as a date, if they form a real calendar date.
func fromDigitSalvage(s string) (string, bool) {
	digits := reNonDigit.ReplaceAllString(s, "")
	if len(digits) < 8 {
		return "", false
	}
	ymd := digits[:8]
	if !validYMD(ymd) {
		return "", false
	}
	return ymd + " 000000", true
}

func fromGeneric(s string) (string, bool) {
	t, err := parseAny(s)
	if err != nil {
		return "", false
	}
	return Format(t), true
}

func parseAny(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range parseLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func validYMD(ymd string) bool {
	_, err := time.Parse("20060102", ymd)
	return err == nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
