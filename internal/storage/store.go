package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/roclab/internal/roc"
	"github.com/san-kum/roclab/internal/system"
)

// Store persists analysis sessions under a data directory, one directory
// per session: metadata.json plus polezero.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SessionMetadata struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Domain      string    `json:"domain"`
	Causality   string    `json:"causality"`
	Declared    string    `json:"declared_stability"`
	Stable      bool      `json:"computed_stable"`
	Valid       bool      `json:"configuration_valid"`
	Boundary    *float64  `json:"boundary,omitempty"`
	Explanation string    `json:"explanation"`
	Region      string    `json:"region"`
	NumPoles    int       `json:"num_poles"`
	NumZeros    int       `json:"num_zeros"`
}

// Save writes one session and returns its id.
func (s *Store) Save(m system.Model, out roc.Outcome) (string, error) {
	sessionID := fmt.Sprintf("%s_%d", m.Domain, time.Now().Unix())
	dir := filepath.Join(s.baseDir, sessionID)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := SessionMetadata{
		ID:          sessionID,
		Timestamp:   time.Now(),
		Domain:      m.Domain.String(),
		Causality:   m.Causality.String(),
		Declared:    m.DeclaredStability.String(),
		Stable:      out.Verdict.Stable,
		Valid:       out.Verdict.Valid,
		Explanation: out.Verdict.Explanation,
		Region:      out.Region.Kind.String(),
		NumPoles:    len(m.Poles),
		NumZeros:    len(m.Zeros),
	}
	if out.Verdict.HasBoundary() {
		b := out.Verdict.Boundary
		meta.Boundary = &b
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.writePoints(filepath.Join(dir, "polezero.csv"), m); err != nil {
		return "", err
	}
	return sessionID, nil
}

func (s *Store) writePoints(path string, m system.Model) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"kind", "re", "im"}); err != nil {
		return err
	}
	write := func(kind string, pts []system.ComplexPoint) error {
		for _, p := range pts {
			row := []string{
				kind,
				strconv.FormatFloat(p.Re, 'f', 6, 64),
				strconv.FormatFloat(p.Im, 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}
	if err := write("pole", m.Poles); err != nil {
		return err
	}
	return write("zero", m.Zeros)
}

func (s *Store) List() ([]SessionMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SessionMetadata{}, nil
		}
		return nil, err
	}

	sessions := make([]SessionMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta SessionMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		sessions = append(sessions, meta)
	}
	return sessions, nil
}

func (s *Store) Load(sessionID string) (*SessionMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, sessionID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta SessionMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadModel rebuilds the stored system model of a session.
func (s *Store) LoadModel(sessionID string) (system.Model, error) {
	meta, err := s.Load(sessionID)
	if err != nil {
		return system.Model{}, err
	}

	domain, err := system.ParseDomain(meta.Domain)
	if err != nil {
		return system.Model{}, err
	}
	causality, err := system.ParseCausality(meta.Causality)
	if err != nil {
		return system.Model{}, err
	}
	declared, err := system.ParseStability(meta.Declared)
	if err != nil {
		return system.Model{}, err
	}

	m := system.New(domain).WithCausality(causality).WithDeclaredStability(declared)

	file, err := os.Open(filepath.Join(s.baseDir, sessionID, "polezero.csv"))
	if err != nil {
		return system.Model{}, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return system.Model{}, err
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 3 {
			continue
		}
		re, err1 := strconv.ParseFloat(record[1], 64)
		im, err2 := strconv.ParseFloat(record[2], 64)
		if err1 != nil || err2 != nil || math.IsNaN(re) || math.IsNaN(im) {
			continue
		}
		pt := system.ComplexPoint{Re: re, Im: im}
		switch record[0] {
		case "pole":
			m, err = m.AddPole(pt)
		case "zero":
			m, err = m.AddZero(pt)
		}
		if err != nil {
			return system.Model{}, err
		}
	}
	return m, nil
}
