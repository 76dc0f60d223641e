package main

import "testing"

func TestParseRootArgs(t *testing.T) {
	root, rest, err := parseRootArgs([]string{"--theme", "light", "--width", "100", "-c", "highlight=false", "play", "--last"})
	if err != nil {
		t.Fatalf("parseRootArgs: %v", err)
	}
	if root.theme != "light" || root.width != 100 {
		t.Fatalf("unexpected root %+v", root)
	}
	if len(root.overrides) != 1 || root.overrides[0] != "highlight=false" {
		t.Fatalf("unexpected overrides %#v", root.overrides)
	}
	if len(rest) != 2 || rest[0] != "play" || rest[1] != "--last" {
		t.Fatalf("unexpected rest %#v", rest)
	}
}

func TestParseRootArgs_NoFlags(t *testing.T) {
	root, rest, err := parseRootArgs([]string{"render", "notes.md"})
	if err != nil {
		t.Fatalf("parseRootArgs: %v", err)
	}
	if root.plain || root.width != 0 {
		t.Fatalf("unexpected root %+v", root)
	}
	if len(rest) != 2 || rest[0] != "render" {
		t.Fatalf("unexpected rest %#v", rest)
	}
}
