// Package output provides utilities for formatting and displaying supply curves.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/iwvelando/labor-supply/internal/supply"
	"github.com/iwvelando/labor-supply/pkg/constants"
	"github.com/iwvelando/labor-supply/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

var (
	bendColor = color.New(color.FgYellow, color.Bold)
	warnColor = color.New(color.FgRed)
	peakColor = color.New(color.FgGreen)
)

// Write renders the curves in the named output format.
func Write(w io.Writer, outputFormat string, curves []supply.Curve) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, curves)
	case constants.OutputFormatCSV:
		return CsvFormat(w, curves)
	case constants.OutputFormatYAML:
		return YamlFormat(w, curves)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
// Rows inside a backward-bending interval and rows that did not converge are
// highlighted when the writer is a color terminal.
func PrettyFormat(w io.Writer, curves []supply.Curve) error {
	p := message.NewPrinter(language.English)
	for n, curve := range curves {
		if _, err := fmt.Fprintf(w, "--- Supply curve for scenario %s (%s, %s) ---\n", curve.Name, curve.Kind, curve.Summary.Strategy); err != nil {
			return err
		}
		fmt.Fprintf(w, "Wage | Hours | Leisure | Income | Utility | Notes\n")
		fmt.Fprintf(w, "____ | _____ | _______ | ______ | _______ | _____\n")

		inBend := bendRows(curve)
		for i, resp := range curve.Responses {
			var notes []string
			if inBend[i] {
				notes = append(notes, bendColor.Sprint("backward"))
			}
			if !resp.Converged {
				notes = append(notes, warnColor.Sprint("low-confidence"))
			}
			if i == curve.Summary.PeakIndex {
				notes = append(notes, peakColor.Sprint("peak"))
			}
			_, _ = p.Fprintf(w, "%.2f | %s | %s | %s | %.4f | %s\n",
				resp.Wage,
				format.Hours(resp.Hours),
				format.Hours(resp.Leisure),
				format.Currency(resp.Income),
				resp.Utility,
				strings.Join(notes, ","),
			)
		}

		s := curve.Summary
		peak := "boundary"
		if s.InteriorPeak {
			peak = "interior"
		}
		_, _ = p.Fprintf(w, "Peak: %s hours at wage %.2f (%s)\n", format.Hours(s.MaxHours), s.PeakWage, peak)
		_, _ = p.Fprintf(w, "Hours: first %s, last %s, change %s, min %s\n",
			format.Hours(s.FirstHours), format.Hours(s.LastHours), format.Hours(s.Change), format.Hours(s.MinHours))
		if len(curve.Bends) == 0 {
			fmt.Fprintf(w, "Backward-bending intervals: none\n")
		} else {
			fmt.Fprintf(w, "Backward-bending intervals:\n")
			for _, b := range curve.Bends {
				line := p.Sprintf("  [%.2f, %.2f]", b.StartWage, b.EndWage)
				if b.LowConfidence {
					line += " " + warnColor.Sprint("(low confidence)")
				}
				fmt.Fprintln(w, line)
			}
		}
		if s.NonConverged > 0 {
			fmt.Fprintf(w, "%s\n", warnColor.Sprintf("%d of %d points did not converge", s.NonConverged, s.Points))
		}
		if n < len(curves)-1 {
			fmt.Fprintf(w, "\n")
		}
	}
	return nil
}

// CsvFormat outputs one row per scenario and wage in comma-separated value format.
func CsvFormat(w io.Writer, curves []supply.Curve) error {
	writer := csv.NewWriter(w)
	header := []string{"scenario", "kind", "wage", "hours", "leisure", "income", "utility", "slope", "converged", "iterations", "method", "bend"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, curve := range curves {
		inBend := bendRows(curve)
		for i, resp := range curve.Responses {
			slope := ""
			if i < len(curve.Slopes) {
				slope = strconv.FormatFloat(curve.Slopes[i], 'g', -1, 64)
			}
			record := []string{
				curve.Name,
				string(curve.Kind),
				strconv.FormatFloat(resp.Wage, 'f', -1, 64),
				strconv.FormatFloat(resp.Hours, 'f', -1, 64),
				strconv.FormatFloat(resp.Leisure, 'f', -1, 64),
				strconv.FormatFloat(resp.Income, 'f', -1, 64),
				strconv.FormatFloat(resp.Utility, 'g', -1, 64),
				slope,
				strconv.FormatBool(resp.Converged),
				strconv.Itoa(resp.Iterations),
				resp.Method,
				strconv.FormatBool(inBend[i]),
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

// YamlFormat outputs the full curves, including slopes, bends and tangency
// samples, for downstream plotting tools.
func YamlFormat(w io.Writer, curves []supply.Curve) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	doc := struct {
		Curves []supply.Curve `yaml:"curves"`
	}{Curves: curves}
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode curves: %w", err)
	}
	return encoder.Close()
}

// bendRows flags every grid index covered by a backward-bending interval.
func bendRows(curve supply.Curve) []bool {
	rows := make([]bool, len(curve.Responses))
	for _, b := range curve.Bends {
		for i := b.StartIndex; i <= b.EndIndex && i < len(rows); i++ {
			rows[i] = true
		}
	}
	return rows
}
