package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/algebra/internal/plot"
)

// topicDoc is the on-disk form of a topic file.
type topicDoc struct {
	ID       string       `yaml:"id"`
	Name     string       `yaml:"name"`
	Order    int          `yaml:"order"`
	Problems []problemDoc `yaml:"problems"`
}

type problemDoc struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Question    string   `yaml:"question"`
	Kind        string   `yaml:"kind"`
	Options     []string `yaml:"options"`
	Answer      string   `yaml:"answer"`
	Hint        string   `yaml:"hint"`
	Level       int      `yaml:"level"`
	Plot        plotDoc  `yaml:"plot"`
}

type plotDoc struct {
	Type   string      `yaml:"type"`
	A      float64     `yaml:"a"`
	B      float64     `yaml:"b"`
	C      float64     `yaml:"c"`
	H      float64     `yaml:"h"`
	K      float64     `yaml:"k"`
	R      float64     `yaml:"r"`
	Base   float64     `yaml:"base"`
	Rule   string      `yaml:"rule"`
	First  float64     `yaml:"first"`
	Step   float64     `yaml:"step"`
	Coeffs []float64   `yaml:"coeffs"`
	Num    []float64   `yaml:"num"`
	Den    []float64   `yaml:"den"`
	Lines  [][]float64 `yaml:"lines"`
}

// spec converts the document into a plot.Spec. Field presence has already
// been checked by the schema.
func (d plotDoc) spec() (plot.Spec, error) {
	switch d.Type {
	case "quadratic":
		return plot.Quadratic{A: d.A, B: d.B, C: d.C}, nil
	case "polynomial":
		return plot.Polynomial{Coeffs: d.Coeffs}, nil
	case "exponential":
		return plot.Exponential{A: d.A, B: d.B}, nil
	case "logarithm":
		return plot.Logarithm{Base: d.Base}, nil
	case "rational":
		return plot.Rational{Num: d.Num, Den: d.Den}, nil
	case "linear_system":
		lines := make([]plot.Line, 0, len(d.Lines))
		for i, l := range d.Lines {
			if len(l) != 2 {
				return nil, fmt.Errorf("line %d: want [slope, intercept], got %d values", i+1, len(l))
			}
			lines = append(lines, plot.Line{Slope: l[0], Intercept: l[1]})
		}
		return plot.LinearSystem{Lines: lines}, nil
	case "circle":
		return plot.Circle{H: d.H, K: d.K, R: d.R}, nil
	case "sequence":
		return plot.Sequence{Rule: plot.SequenceKind(d.Rule), First: d.First, Step: d.Step}, nil
	case "radical":
		return plot.Radical{A: d.A, H: d.H}, nil
	case "complex_plane":
		return plot.ComplexPlane{}, nil
	default:
		return nil, fmt.Errorf("unknown plot type %q", d.Type)
	}
}

// Load reads every *.yaml file at the root of fsys as a topic, validates
// each against TopicSchema and the problem validators, and builds a Catalog.
func Load(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list topic files: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New("no topic files found")
	}

	topics := make([]Topic, 0, len(paths))
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		t, err := ParseTopic(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(p), err)
		}
		topics = append(topics, t)
	}
	return New(topics)
}

// ParseTopic decodes and schema-checks a single topic document.
func ParseTopic(data []byte) (Topic, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Topic{}, fmt.Errorf("parse yaml: %w", err)
	}
	doc, err := jsonCompatible(raw)
	if err != nil {
		return Topic{}, err
	}
	if err := validateDocument(doc); err != nil {
		return Topic{}, err
	}

	var td topicDoc
	if err := yaml.Unmarshal(data, &td); err != nil {
		return Topic{}, fmt.Errorf("decode topic: %w", err)
	}

	t := Topic{
		ID:       td.ID,
		Name:     td.Name,
		Order:    td.Order,
		Problems: make([]Problem, 0, len(td.Problems)),
	}
	for _, pd := range td.Problems {
		spec, err := pd.Plot.spec()
		if err != nil {
			return Topic{}, fmt.Errorf("problem %q: %w", pd.ID, err)
		}
		t.Problems = append(t.Problems, Problem{
			ID:          pd.ID,
			Title:       pd.Title,
			Description: pd.Description,
			Question:    pd.Question,
			Kind:        Kind(pd.Kind),
			Options:     pd.Options,
			AnswerKey:   pd.Answer,
			Hint:        pd.Hint,
			Level:       pd.Level,
			Plot:        spec,
		})
	}
	return t, nil
}

// jsonCompatible converts a YAML-decoded value into the shape the schema
// validator expects by round-tripping it through encoding/json.
func jsonCompatible(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("convert yaml to json: %w", err)
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("convert yaml to json: %w", err)
	}
	return out, nil
}
