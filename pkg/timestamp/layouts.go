package timestamp

type layout struct {
	layout string
	date   bool // layout carries a calendar date
	offset bool // layout carries a numeric UTC offset
}

var (
	isoDates = []string{
		"2006-01-02",
		"2006/01/02",
	}

	textDates = []string{
		"1/2/2006",
		"January 2 2006",
		"Jan 2 2006",
		"2 January 2006",
		"2 Jan 2006",
		"Monday January 2 2006",
		"Mon Jan 2 2006",
	}

	clocks = []string{
		"15:04:05",
		"15:04",
		"3:04:05 PM",
		"3:04 PM",
		"3:04:05PM",
		"3:04PM",
		"3 PM",
		"3PM",
	}

	// No "MST" layouts: time.Parse gives unknown zone abbreviations a zero offset.
	offsets = []string{
		"Z07:00",
		"-0700",
		"-07",
	}
)

// layouts is ordered from most to least specific. Parse takes the first match.
var layouts = buildLayouts()

func buildLayouts() []layout {
	type dateSep struct {
		date string
		seps []string
	}

	var dated []dateSep
	for _, d := range isoDates {
		dated = append(dated, dateSep{d, []string{"T", " "}})
	}
	for _, d := range textDates {
		dated = append(dated, dateSep{d, []string{" "}})
	}

	var out []layout

	// date + clock + offset
	for _, d := range dated {
		for _, sep := range d.seps {
			for _, c := range clocks {
				for _, o := range offsets {
					out = append(out,
						layout{d.date + sep + c + " " + o, true, true},
						layout{d.date + sep + c + o, true, true},
					)
				}
			}
		}
	}

	// date + clock
	for _, d := range dated {
		for _, sep := range d.seps {
			for _, c := range clocks {
				out = append(out, layout{d.date + sep + c, true, false})
			}
		}
	}

	// date + offset, read as midnight at that offset
	for _, d := range dated {
		for _, o := range offsets {
			out = append(out, layout{d.date + " " + o, true, true})
		}
	}

	// date only
	for _, d := range dated {
		out = append(out, layout{d.date, true, false})
	}

	// clock + offset, clock only
	for _, c := range clocks {
		for _, o := range offsets {
			out = append(out,
				layout{c + " " + o, false, true},
				layout{c + o, false, true},
			)
		}
	}
	for _, c := range clocks {
		out = append(out, layout{c, false, false})
	}

	return out
}
