package employee

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GenerateEmployeeNo builds MMDDYYYY(doj) + seq (at least 5 digits) + the
// first two letters of each name, upper-cased. Names shorter than two
// letters are used whole.
func GenerateEmployeeNo(doj time.Time, seq int64, firstName, lastName string) string {
	// Casers carry state and must not be shared across goroutines.
	upper := cases.Upper(language.Und)
	return fmt.Sprintf("%s%05d%s%s",
		doj.Format("01022006"),
		seq,
		upper.String(prefix(firstName, 2)),
		upper.String(prefix(lastName, 2)),
	)
}

func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
