package lookup

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"holocron/internal/charcache"
	"holocron/internal/swapi"
)

const (
	earthDayHours = 24
	earthYearDays = 365
	separator     = "----------------"

	// StampLayout renders capture timestamps with microsecond precision.
	StampLayout = "2006-01-02 15:04:05.000000"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiBlue  = "\x1b[34m"
)

func writeCharacter(out io.Writer, c swapi.Character) {
	fmt.Fprintf(out, "Name: %s\n", c.Name)
	fmt.Fprintf(out, "Height: %s\n", c.Height)
	fmt.Fprintf(out, "Mass: %s\n", c.Mass)
	fmt.Fprintf(out, "Birth Year: %s\n", c.BirthYear)
}

func writeHomeworld(out io.Writer, p swapi.Planet, yearRatio, dayRatio float64) {
	fmt.Fprintf(out, "Name: %s\n", p.Name)
	fmt.Fprintf(out, "Population: %s\n", p.Population)
	fmt.Fprintf(out, "On %s, 1 year on earth is %s years and 1 day %s days\n",
		p.Name, FormatRatio(yearRatio), FormatRatio(dayRatio))
}

func writeCacheEntry(out io.Writer, e charcache.NamedEntry) {
	fmt.Fprintf(out, "Name: %s\n", e.Character.Name)
	fmt.Fprintf(out, "Time of search: %s\n", formatStamp(e.CachedAt))
	fmt.Fprintln(out, "Result:")
	fmt.Fprintf(out, "  Height: %s\n", e.Character.Height)
	fmt.Fprintf(out, "  Mass: %s\n", e.Character.Mass)
	fmt.Fprintf(out, "  Birth Year: %s\n", e.Character.BirthYear)
	fmt.Fprintln(out, separator)
}

// FormatRatio renders v in its shortest round-trip form. Decimal exponents
// below -4 or from 16 up use scientific notation ("2.7397260273972603e-05",
// "1e+17"); otherwise whole numbers keep a decimal point ("1.0", not "1").
func FormatRatio(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err == nil && v != 0 && (exp < -4 || exp >= 16) {
		return sci
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

func formatStamp(t time.Time) string {
	return t.Local().Format(StampLayout)
}

// FormatStamp renders a capture timestamp the way every command prints it.
func FormatStamp(t time.Time) string {
	return formatStamp(t)
}
