package arbor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTree2Dot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	root := buildExampleTree(t)
	var buf bytes.Buffer
	Tree2Dot(root, &buf)
	dot := buf.String()
	t.Logf("dot = %s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") {
		t.Errorf("expected DOT output to open a digraph")
	}
	if strings.Count(dot, "->") != 4 {
		t.Errorf("expected 4 edges for the example tree, got %d", strings.Count(dot, "->"))
	}
	for _, label := range []string{"label=\"1\"", "label=\"5\""} {
		if !strings.Contains(dot, label) {
			t.Errorf("expected DOT output to contain %s", label)
		}
	}
}
