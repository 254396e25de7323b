package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"github.com/abhisek/algebra/internal/plot"
)

// DefaultTopicID is the topic loaded when a requested topic is unknown.
const DefaultTopicID = "quadratic"

// ErrUnknownTopic is returned by Topic for IDs not in the catalog.
var ErrUnknownTopic = errors.New("unknown topic")

// Kind describes how the learner answers a problem.
type Kind string

const (
	// MultipleChoice means the learner picks one of Options.
	MultipleChoice Kind = "multiple_choice"

	// FreeResponse means the learner types the answer.
	FreeResponse Kind = "free_response"
)

// Problem is a single authored problem. Problems are immutable once the
// catalog is loaded; callers must not modify Options.
type Problem struct {
	ID          string
	Title       string
	Description string
	Question    string
	Kind        Kind

	// Options is set only for MultipleChoice and contains AnswerKey exactly once.
	Options []string

	// AnswerKey is the ground truth answer, compared after normalization.
	AnswerKey string

	Hint string

	// Level is the authored difficulty (1-5).
	Level int

	// Plot is the graph shown with the problem.
	Plot plot.Spec
}

// Topic is a named, ordered problem set.
type Topic struct {
	ID       string
	Name     string
	Order    int
	Problems []Problem
}

// TopicInfo is the listing form of a Topic.
type TopicInfo struct {
	ID          string
	DisplayName string
}

// Catalog is a read-only set of topics. It is safe for concurrent use.
type Catalog struct {
	topics []Topic
	byID   map[string]int
}

//go:embed topics/*.yaml
var topicsFS embed.FS

var defaultCatalog = sync.OnceValue(func() *Catalog {
	sub, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded topics: %v", err))
	}
	c, err := Load(sub)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded topics are invalid: %v", err))
	}
	return c
})

// Default returns the catalog built from the embedded topic files.
func Default() *Catalog {
	return defaultCatalog()
}

// New builds a catalog from already-decoded topics, running the same
// validation as Load.
func New(topics []Topic) (*Catalog, error) {
	if err := validateTopics(topics); err != nil {
		return nil, err
	}

	sorted := make([]Topic, len(topics))
	copy(sorted, topics)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	c := &Catalog{
		topics: sorted,
		byID:   make(map[string]int, len(sorted)),
	}
	for i, t := range c.topics {
		c.byID[t.ID] = i
	}
	return c, nil
}

// ListTopics returns all topics in display order.
func (c *Catalog) ListTopics() []TopicInfo {
	out := make([]TopicInfo, 0, len(c.topics))
	for _, t := range c.topics {
		out = append(out, TopicInfo{ID: t.ID, DisplayName: t.Name})
	}
	return out
}

// Topic returns the topic with the given ID.
func (c *Catalog) Topic(id string) (Topic, error) {
	i, ok := c.byID[id]
	if !ok {
		return Topic{}, fmt.Errorf("%w: %q", ErrUnknownTopic, id)
	}
	return c.topics[i], nil
}

// Has reports whether the catalog contains the topic.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// ProblemCount returns the number of problems across all topics.
func (c *Catalog) ProblemCount() int {
	n := 0
	for _, t := range c.topics {
		n += len(t.Problems)
	}
	return n
}
