package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/roclab/internal/roc"
	"github.com/san-kum/roclab/internal/system"
)

type pointData struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

type curveData struct {
	Kind     string  `json:"kind"`
	Position float64 `json:"position"`
	Primary  bool    `json:"primary"`
}

// AnalysisData is the full JSON shape of one analysis: model, verdict,
// and region geometry.
type AnalysisData struct {
	Domain      string      `json:"domain"`
	Causality   string      `json:"causality"`
	Declared    string      `json:"declared_stability"`
	Poles       []pointData `json:"poles"`
	Zeros       []pointData `json:"zeros"`
	Stable      bool        `json:"computed_stable"`
	Valid       bool        `json:"configuration_valid"`
	Boundary    *float64    `json:"boundary,omitempty"`
	Explanation string      `json:"explanation"`
	Region      string      `json:"region"`
	Curves      []curveData `json:"curves"`
}

func buildAnalysisData(m system.Model, out roc.Outcome) AnalysisData {
	data := AnalysisData{
		Domain:      m.Domain.String(),
		Causality:   m.Causality.String(),
		Declared:    m.DeclaredStability.String(),
		Poles:       toPointData(m.Poles),
		Zeros:       toPointData(m.Zeros),
		Stable:      out.Verdict.Stable,
		Valid:       out.Verdict.Valid,
		Explanation: out.Verdict.Explanation,
		Region:      out.Region.Kind.String(),
	}
	if out.Verdict.HasBoundary() {
		b := out.Verdict.Boundary
		data.Boundary = &b
	}
	for _, c := range out.Curves {
		kind := "line"
		if c.Kind == roc.Circle {
			kind = "circle"
		}
		data.Curves = append(data.Curves, curveData{Kind: kind, Position: c.Position, Primary: c.Primary})
	}
	return data
}

func toPointData(pts []system.ComplexPoint) []pointData {
	out := make([]pointData, len(pts))
	for i, p := range pts {
		out[i] = pointData{Re: p.Re, Im: p.Im}
	}
	return out
}

// WriteJSON writes the analysis as indented JSON.
func WriteJSON(w io.Writer, m system.Model, out roc.Outcome) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildAnalysisData(m, out))
}

// JSONToFile writes the analysis JSON to a file.
func JSONToFile(path string, m system.Model, out roc.Outcome) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, m, out)
}
