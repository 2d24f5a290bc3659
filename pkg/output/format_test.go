package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/iwvelando/labor-supply/internal/optimizer"
	"github.com/iwvelando/labor-supply/internal/supply"
	"github.com/iwvelando/labor-supply/pkg/bend"
	"github.com/iwvelando/labor-supply/pkg/optimization"
	"github.com/iwvelando/labor-supply/pkg/utility"
	"gopkg.in/yaml.v3"
)

func testCurves() []supply.Curve {
	wages := []float64{1, 2, 3, 4, 5}
	hours := []float64{2, 3, 4, 3, 2}
	responses := make([]optimizer.Response, len(wages))
	converged := make([]bool, len(wages))
	for i, wage := range wages {
		responses[i] = optimizer.Response{
			Wage:      wage,
			Hours:     hours[i],
			Leisure:   16 - hours[i],
			Income:    1000 + wage*hours[i],
			Utility:   12.5,
			Converged: i != 4,
			Method:    "brent",
		}
		converged[i] = responses[i].Converged
	}
	return []supply.Curve{
		{
			Name:      "Test Scenario",
			Kind:      utility.CES,
			Scheme:    "forward",
			Wages:     wages,
			Responses: responses,
			Slopes:    []float64{1, 1, -1, -1},
			Bends: []supply.Bend{
				{Interval: bend.Interval{StartWage: 3, EndWage: 5, StartIndex: 2, EndIndex: 4}, LowConfidence: true},
			},
			Summary: optimization.Summarize("brent", wages, hours, converged, nil, 1),
		},
	}
}

func TestPrettyFormat(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	if err := PrettyFormat(&buf, testCurves()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := buf.String()

	expected := []string{
		"--- Supply curve for scenario Test Scenario (ces, brent) ---",
		"Wage | Hours | Leisure | Income | Utility | Notes",
		"3.00 | 4.0000 | 12.0000 | $1,012.00 | 12.5000 | backward,peak",
		"5.00 | 2.0000 | 14.0000 | $1,010.00 | 12.5000 | backward,low-confidence",
		"1.00 | 2.0000 | 14.0000 | $1,002.00 | 12.5000 | \n",
		"Peak: 4.0000 hours at wage 3.00 (interior)",
		"  [3.00, 5.00] (low confidence)",
		"1 of 5 points did not converge",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("PrettyFormat missing %q in:\n%s", want, output)
		}
	}
}

func TestPrettyFormatGroupsLargeWages(t *testing.T) {
	color.NoColor = true

	curves := testCurves()
	curves[0].Responses[0].Wage = 10000
	curves[0].Bends = nil

	var buf bytes.Buffer
	if err := PrettyFormat(&buf, curves); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "10,000.00 |") {
		t.Errorf("expected grouped wage, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "Backward-bending intervals: none") {
		t.Errorf("expected no intervals line")
	}
}

func TestCsvFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, testCurves()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}
	if len(records) != 6 {
		t.Fatalf("expected header plus 5 rows, got %d", len(records))
	}
	if records[0][0] != "scenario" || records[0][len(records[0])-1] != "bend" {
		t.Fatalf("unexpected header %v", records[0])
	}
	row := records[3]
	if row[2] != "3" || row[3] != "4" || row[7] != "-1" || row[11] != "true" {
		t.Fatalf("unexpected row %v", row)
	}
	last := records[5]
	if last[7] != "" || last[8] != "false" {
		t.Fatalf("expected empty slope and non-converged flag in %v", last)
	}
}

func TestYamlFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := YamlFormat(&buf, testCurves()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc struct {
		Curves []struct {
			Name  string `yaml:"name"`
			Kind  string `yaml:"kind"`
			Bends []struct {
				StartWage     float64 `yaml:"startWage"`
				EndWage       float64 `yaml:"endWage"`
				LowConfidence bool    `yaml:"lowConfidence"`
			} `yaml:"bends"`
			Summary struct {
				PeakWage     float64 `yaml:"peakWage"`
				InteriorPeak bool    `yaml:"interiorPeak"`
			} `yaml:"summary"`
		} `yaml:"curves"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid yaml: %v", err)
	}
	if len(doc.Curves) != 1 {
		t.Fatalf("expected one curve, got %d", len(doc.Curves))
	}
	curve := doc.Curves[0]
	if curve.Name != "Test Scenario" || curve.Kind != "ces" {
		t.Fatalf("unexpected curve header %+v", curve)
	}
	if len(curve.Bends) != 1 || curve.Bends[0].StartWage != 3 || curve.Bends[0].EndWage != 5 || !curve.Bends[0].LowConfidence {
		t.Fatalf("unexpected bends %+v", curve.Bends)
	}
	if curve.Summary.PeakWage != 3 || !curve.Summary.InteriorPeak {
		t.Fatalf("unexpected summary %+v", curve.Summary)
	}
	if strings.Contains(buf.String(), "tangency") {
		t.Fatalf("nil tangency must be omitted")
	}
}

func TestWrite(t *testing.T) {
	color.NoColor = true
	for _, name := range []string{"pretty", "csv", "yaml"} {
		var buf bytes.Buffer
		if err := Write(&buf, name, testCurves()); err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if buf.Len() == 0 {
			t.Fatalf("%s: expected output", name)
		}
	}
	if err := Write(&bytes.Buffer{}, "xml", testCurves()); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
