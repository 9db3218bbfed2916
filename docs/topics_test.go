package docs

import (
	"os"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// listedTopics returns the topics listed in the index as "* name: summary" items.
func listedTopics(t *testing.T) []string {
	t.Helper()
	content, err := os.ReadFile(Index + ".md")
	if err != nil {
		t.Fatalf("failed to read %s.md: %v", Index, err)
	}
	item := regexp.MustCompile(`^([a-z-]+):`)

	root := goldmark.DefaultParser().Parse(text.NewReader(content))
	var topics []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if li, ok := n.(*ast.ListItem); ok {
			first := li.FirstChild()
			if first == nil || first.Lines().Len() == 0 {
				return ast.WalkSkipChildren, nil
			}
			line := first.Lines().At(0)
			if m := item.FindSubmatch(line.Value(content)); m != nil {
				topics = append(topics, string(m[1]))
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return topics
}

func TestIndexListsEveryTopic(t *testing.T) {
	listed := listedTopics(t)
	if len(listed) == 0 {
		t.Fatalf("no topic listed in %s.md", Index)
	}
	for _, topic := range listed {
		if _, err := Topic(topic); err != nil {
			t.Errorf("Topic(%q) error = %v", topic, err)
		}
	}

	all, err := All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in %s.md", topic, Index)
		}
	}
}

func TestTopics(t *testing.T) {
	all, err := All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if slices.Contains(all, Index) {
		t.Errorf("All() = %v, want the index left out", all)
	}

	content, err := Topics("*")
	if err != nil {
		t.Fatalf("Topics(*) error = %v", err)
	}
	for _, topic := range all {
		one, _ := Topic(topic)
		if !strings.Contains(content, one) {
			t.Errorf("Topics(*) does not contain %q", topic)
		}
	}

	if _, err := Topics("grouping", "no-such-topic"); err == nil {
		t.Errorf("Topics() of an unknown topic returned no error")
	}
}
