package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layout tokens. Each token must stand alone as a word in the layout, so
// "Day" is left as is while "D" is replaced.
//
//	yyyy  year number            T   year name (Taun)
//	m     month number           mm  month number, two digits
//	M     month name (Wulan)     d   day of month
//	dd    day, two digits        D   day name (Dina)
//	P     market day (Pasaran)   W   wuku
//	N     neptu                  MS  season (Mongso)
//	WK    time of day (Wektu)    HH  hour, two digits
//	MM    minute, two digits     SS  second, two digits
//	Z     zone offset as -0700
var formatTokens = regexp.MustCompile(`\b(yyyy|MS|mm|dd|HH|MM|SS|WK|T|W|P|D|M|N|m|d|Z)\b`)

// Format renders d according to layout. Text that is not a token is copied
// unchanged.
func (d Date) Format(layout string) string {
	return formatTokens.ReplaceAllStringFunc(layout, func(token string) string {
		switch token {
		case "yyyy":
			return formatYear(d.f.year)
		case "MS":
			return d.Mongso()
		case "mm":
			return fmt.Sprintf("%02d", d.f.month+1)
		case "dd":
			return fmt.Sprintf("%02d", d.f.day)
		case "HH":
			return fmt.Sprintf("%02d", d.t.Hour())
		case "MM":
			return fmt.Sprintf("%02d", d.t.Minute())
		case "SS":
			return fmt.Sprintf("%02d", d.t.Second())
		case "WK":
			return d.Wektu()
		case "T":
			return d.Taun()
		case "W":
			return d.Wuku()
		case "P":
			return d.Pasaran()
		case "D":
			return d.Dina()
		case "M":
			return d.Wulan()
		case "N":
			return strconv.Itoa(d.Neptu())
		case "m":
			return strconv.Itoa(d.f.month + 1)
		case "d":
			return strconv.Itoa(d.f.day)
		case "Z":
			return d.t.Format("-0700")
		}
		return token
	})
}

// field identifies what a parse token captures.
type field int

const (
	fieldYear field = iota
	fieldMonthName
	fieldMonth
	fieldDay
	fieldHour
	fieldMinute
	fieldSecond
	fieldPasaran
	fieldDina
	fieldZone
)

var parseTokens = map[string]struct {
	pattern string
	field   field
}{
	"yyyy": {`(-?\d{4,})`, fieldYear},
	"M":    {`([a-zA-Z\s]+)`, fieldMonthName},
	"mm":   {`(\d{2})`, fieldMonth},
	"m":    {`(\d{1,2})`, fieldMonth},
	"dd":   {`(\d{2})`, fieldDay},
	"d":    {`(\d{1,2})`, fieldDay},
	"HH":   {`(\d{2})`, fieldHour},
	"MM":   {`(\d{2})`, fieldMinute},
	"SS":   {`(\d{2})`, fieldSecond},
	"P":    {`([a-zA-Z]+)`, fieldPasaran},
	"D":    {`([a-zA-Z]+)`, fieldDina},
	"Z":    {`([+-]\d{4})`, fieldZone},
}

// formatYear zero-pads the year to at least four digits, keeping the sign.
func formatYear(y int) string {
	if y < 0 {
		return fmt.Sprintf("-%04d", -y)
	}
	return fmt.Sprintf("%04d", y)
}

var parseTokenRe = regexp.MustCompile(`\b(yyyy|MM|mm|M|m|dd|d|HH|SS|P|D|Z)\b`)

// compileLayout turns a layout into an anchored pattern with one capture
// group per token, returning the field each group decodes to.
func compileLayout(layout string) (*regexp.Regexp, []field, error) {
	var (
		sb    strings.Builder
		order []field
		last  int
	)
	sb.WriteString("^")
	for _, loc := range parseTokenRe.FindAllStringIndex(layout, -1) {
		sb.WriteString(regexp.QuoteMeta(layout[last:loc[0]]))
		tok := parseTokens[layout[loc[0]:loc[1]]]
		sb.WriteString(tok.pattern)
		order = append(order, tok.field)
		last = loc[1]
	}
	sb.WriteString(regexp.QuoteMeta(layout[last:]))
	sb.WriteString("$")

	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, nil, fmt.Errorf("%w %q: %v", ErrLayout, layout, err)
	}
	return re, order, nil
}

// Parse reads a Javanese date written according to layout. The time of day
// is taken from HH, MM and SS when present (zero otherwise) and the instant
// is in UTC unless the layout has a Z token.
//
// Year, month (M, m or mm) and day (d or dd) are required. P and D are
// assertions: they must agree with the day that the year, month and day
// resolve to.
func Parse(value, layout string) (Date, error) {
	return ParseInLocation(value, layout, time.UTC)
}

// ParseInLocation is like Parse but builds the instant in loc when the
// layout has no Z token.
func ParseInLocation(value, layout string, loc *time.Location) (Date, error) {
	re, order, err := compileLayout(layout)
	if err != nil {
		return Date{}, err
	}
	m := re.FindStringSubmatch(value)
	if m == nil {
		return Date{}, fmt.Errorf("%w: %q does not match %q", ErrNoMatch, value, layout)
	}

	p := parsed{pasaran: -1, dina: -1}
	for i, f := range order {
		if err := p.set(f, m[i+1]); err != nil {
			return Date{}, err
		}
	}
	if !p.hasYear || !p.hasMonth || !p.hasDay {
		return Date{}, fmt.Errorf("%w: %q needs year, month and day", ErrMissingField, layout)
	}
	if p.zone != nil {
		loc = p.zone
	}

	d, err := FromJavanese(p.year, p.month, p.day, p.hour, p.minute, p.second, loc)
	if err != nil {
		return Date{}, err
	}
	if p.pasaran >= 0 && p.pasaran != d.f.pasaran {
		return Date{}, fmt.Errorf("%w: %d %s %d is %s, not %s",
			ErrMarketDayMismatch, p.day, Wulan[p.month], p.year, d.Pasaran(), Pasaran[p.pasaran])
	}
	if p.dina >= 0 && p.dina != d.f.dina {
		return Date{}, fmt.Errorf("%w: %d %s %d is %s, not %s",
			ErrDayNameMismatch, p.day, Wulan[p.month], p.year, d.Dina(), Dina[p.dina])
	}
	return d, nil
}

// parsed accumulates the decoded capture groups. pasaran and dina are -1
// unless the layout asserts them.
type parsed struct {
	year, month, day          int
	hasYear, hasMonth, hasDay bool
	hour, minute, second      int
	pasaran, dina             int
	zone                      *time.Location
}

func (p *parsed) set(f field, v string) error {
	switch f {
	case fieldMonthName:
		i := lookup(Wulan[:], v)
		if i < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownMonthName, strings.TrimSpace(v))
		}
		p.month, p.hasMonth = i, true
	case fieldPasaran:
		i := lookup(Pasaran[:], v)
		if i < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownMarketDay, v)
		}
		p.pasaran = i
	case fieldDina:
		i := lookup(Dina[:], v)
		if i < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownDayName, v)
		}
		p.dina = i
	case fieldZone:
		z, err := parseZone(v)
		if err != nil {
			return err
		}
		p.zone = z
	default:
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrUnparseableNumber, v)
		}
		switch f {
		case fieldYear:
			p.year, p.hasYear = n, true
		case fieldMonth:
			p.month, p.hasMonth = n-1, true
		case fieldDay:
			p.day, p.hasDay = n, true
		case fieldHour:
			p.hour = n
		case fieldMinute:
			p.minute = n
		case fieldSecond:
			p.second = n
		}
	}
	return nil
}

// parseZone reads an offset such as +0700.
func parseZone(v string) (*time.Location, error) {
	h, herr := strconv.Atoi(v[1:3])
	m, merr := strconv.Atoi(v[3:5])
	if herr != nil || merr != nil {
		return nil, fmt.Errorf("%w: zone %q", ErrUnparseableNumber, v)
	}
	offset := (h*60 + m) * 60
	if v[0] == '-' {
		offset = -offset
	}
	return time.FixedZone("", offset), nil
}
