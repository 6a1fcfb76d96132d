// Package report renders the draft route description document and writes
// it next to the source file.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"track2text/internal/domain"
)

// Data bundles everything one rendered document needs. The writer is the
// only place user-facing strings are formatted.
type Data struct {
	SourceName string
	Summary    domain.Summary
	Metrics    *domain.Metrics
	Events     []domain.Event
}

// DefaultPath derives the output file from the input: inbox/run.gpx
// becomes inbox/run.txt.
func DefaultPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".txt"
}

// Write renders the document and writes it to path.
func Write(path string, d Data) error {
	if err := os.WriteFile(path, []byte(Render(d)), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Render produces the complete draft document: header, raw counters,
// source line, the optional recording block, then one bullet per event.
func Render(d Data) string {
	var b strings.Builder

	b.WriteString("Rohfassung Wegbeschreibung\n")
	b.WriteString(strings.Repeat("=", 23) + "\n\n")
	b.WriteString("Hinweis: Diese Liste ist eine Rohfassung. Bitte mit ChatGPT zu einer\n")
	b.WriteString("gut lesenden Wegbeschreibung zusammenfassen.\n\n")
	b.WriteString("Format: Stichpunkte mit Straßenwechseln und Ortsangaben.\n")
	b.WriteString("Abschnitte: automatisch nach Distanz gegliedert.\n\n")

	fmt.Fprintf(&b, "Rohdaten: Trackpunkte=%d, Samples=%d, Distanz≈%.2f km\n\n",
		d.Summary.TrackPointCount, d.Summary.SampleCount, d.Summary.TotalDistanceKm)

	fmt.Fprintf(&b, "Quelle: %s\n\n", d.SourceName)

	if line := metricsLine(d.Metrics); line != "" {
		b.WriteString(line + "\n\n")
	}

	lines := renderEvents(d.Events)
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")

	return b.String()
}

// metricsLine formats the device-recorded session totals, or "" when
// there are none.
func metricsLine(m *domain.Metrics) string {
	if m == nil {
		return ""
	}

	parts := make([]string, 0, 5)
	if m.Sport != "" {
		parts = append(parts, "Sportart="+m.Sport)
	}
	if m.DistanceMeters > 0 {
		parts = append(parts, fmt.Sprintf("Distanz=%.2f km", m.DistanceMeters/1000))
	}
	if m.Elapsed > 0 {
		parts = append(parts, "Dauer="+m.Elapsed.String())
	}
	if m.AscentMeters > 0 {
		parts = append(parts, fmt.Sprintf("Anstieg=%d m", m.AscentMeters))
	}
	if m.DescentMeters > 0 {
		parts = append(parts, fmt.Sprintf("Abstieg=%d m", m.DescentMeters))
	}
	if len(parts) == 0 {
		return ""
	}

	return "Aufzeichnung: " + strings.Join(parts, ", ")
}

// Last place and district already mentioned in the document. Road
// changes only repeat them when they differ.
type renderState struct {
	place    string
	district string
}

func renderEvents(events []domain.Event) []string {
	lines := make([]string, 0, len(events))
	var st renderState

	for _, ev := range events {
		switch ev.Kind {
		case domain.EventStart:
			lines = append(lines, startLine(ev, &st))
		case domain.EventRoadChange:
			lines = append(lines, roadChangeLine(ev, &st))
		case domain.EventSection:
			lines = append(lines, sectionLine(ev, &st))
		case domain.EventFinish:
			lines = append(lines, finishLine(ev))
		}
	}

	return lines
}

func startLine(ev domain.Event, st *renderState) string {
	line := "- Start"
	if ev.Address.Road != "" {
		line += ": " + ev.Address.Road
	}
	line += locationSuffix(ev.Address)

	if ev.Address.Place != "" {
		st.place = ev.Address.Place
	}
	if ev.Address.District != "" {
		st.district = ev.Address.District
	}

	return line
}

func roadChangeLine(ev domain.Event, st *renderState) string {
	line := "- Straßenwechsel: " + ev.Address.Road

	bits := make([]string, 0, 2)
	if ev.Address.Place != "" && ev.Address.Place != st.place {
		bits = append(bits, "Ort: "+ev.Address.Place)
		st.place = ev.Address.Place
	}
	if ev.Address.District != "" && ev.Address.District != st.district {
		bits = append(bits, "Ortsteil: "+ev.Address.District)
		st.district = ev.Address.District
	}
	if len(bits) > 0 {
		line += " (" + strings.Join(bits, ", ") + ")"
	}

	return line
}

// sectionLine keeps the original layout of these markers: the place in
// parens, the district appended outside them.
func sectionLine(ev domain.Event, st *renderState) string {
	line := fmt.Sprintf("- Abschnitt: ab km %d", ev.SectionKm)
	if ev.Address.Place != "" {
		line += fmt.Sprintf(" (Ort: %s)", ev.Address.Place)
	}
	if ev.Address.District != "" {
		line += ", Ortsteil: " + ev.Address.District
	}

	st.place = ev.Address.Place
	st.district = ev.Address.District

	return line
}

func finishLine(ev domain.Event) string {
	line := "- Ziel"
	if ev.Address.Road != "" {
		line += ": " + ev.Address.Road
	}
	return line + locationSuffix(ev.Address)
}

// locationSuffix renders " (Ort: X, Ortsteil: Y)" with both parts
// optional; unknown fields are omitted, never placeholdered.
func locationSuffix(addr domain.Address) string {
	if addr.Place == "" && addr.District == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(" (")
	if addr.Place != "" {
		b.WriteString("Ort: " + addr.Place)
	}
	if addr.District != "" {
		if addr.Place != "" {
			b.WriteString(", ")
		}
		b.WriteString("Ortsteil: " + addr.District)
	}
	b.WriteString(")")

	return b.String()
}
