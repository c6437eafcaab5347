package assistant

import (
	"sort"
	"strings"
	"time"
)

// NoDataMessage is returned when the patient has no consumption history.
const NoDataMessage = "No consumption data found for this patient."

// Entry is one consumption event as fed into the summary builder.
type Entry struct {
	Medication string
	Doctor     string
	Timing     string
	Time       time.Time
}

// BuildSummary renders the consumption history into the bulleted text block
// sent to the model. An empty history yields the NoDataMessage sentinel.
// Entries are grouped by medication name in first-seen order; the first entry
// of each group supplies the doctor and timing. Dates are calendar days,
// deduplicated and sorted ascending.
func BuildSummary(entries []Entry) string {
	if len(entries) == 0 {
		return NoDataMessage
	}

	order := []string{}
	groups := map[string][]Entry{}
	for _, e := range entries {
		if _, ok := groups[e.Medication]; !ok {
			order = append(order, e.Medication)
		}
		groups[e.Medication] = append(groups[e.Medication], e)
	}

	var b strings.Builder
	b.WriteString("Consumed Medication Details:\n")
	for _, name := range order {
		group := groups[name]
		first := group[0]
		b.WriteString("• ")
		b.WriteString(name)
		b.WriteString(" (Doctor: ")
		b.WriteString(first.Doctor)
		b.WriteString(", Timing: ")
		b.WriteString(first.Timing)
		b.WriteString(")\n   Dates Consumed: ")
		b.WriteString(strings.Join(consumedDates(group), ", "))
		b.WriteString("\n\n")
	}
	return b.String()
}

// consumedDates returns the distinct ISO dates of the group in ascending
// order. ISO dates sort lexicographically, so string sort matches
// chronological order.
func consumedDates(group []Entry) []string {
	seen := map[string]bool{}
	dates := []string{}
	for _, e := range group {
		d := e.Time.Format("2006-01-02")
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)
	return dates
}
