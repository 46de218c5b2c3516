package destinations_test

import (
	"errors"
	"testing"

	"github.com/JaimeStill/steward/internal/destinations"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already clean", "/Videos", "/Videos"},
		{"trailing slash stripped", "/Videos/", "/Videos"},
		{"nested trailing slash", "/Media/Movies/", "/Media/Movies"},
		{"redundant segments", "/a/./b/../c", "/a/c"},
		{"surrounding whitespace", "  /Documents  ", "/Documents"},
		{"root", "/", "/"},
		{"backslash separators", `C:\Media\TV`, "C:/Media/TV"},
		{"lowercase drive letter", "c:/music", "C:/music"},
		{"drive root", `C:\`, "C:/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := destinations.NormalizePath(tt.input)
			if err != nil {
				t.Fatalf("NormalizePath(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePathRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"relative", "Videos/Movies"},
		{"dot relative", "./Videos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := destinations.NormalizePath(tt.input)
			if !errors.Is(err, destinations.ErrValidation) {
				t.Errorf("NormalizePath(%q) error = %v, want ErrValidation", tt.input, err)
			}
		})
	}
}

func TestIsDescendant(t *testing.T) {
	tests := []struct {
		name   string
		parent string
		child  string
		want   bool
	}{
		{"direct child", "/Videos", "/Videos/Movies", true},
		{"deep descendant", "/Videos", "/Videos/Movies/HD", true},
		{"same path", "/Videos", "/Videos", false},
		{"sibling with shared prefix", "/Videos", "/Videos2", false},
		{"sibling subtree with shared prefix", "/Videos", "/Videos2/Movies", false},
		{"reversed relationship", "/Videos/Movies", "/Videos", false},
		{"root parent", "/", "/Videos", true},
		{"drive-letter child", "C:/Media", "C:/Media/TV", true},
		{"unrelated", "/Music", "/Videos", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := destinations.IsDescendant(tt.parent, tt.child); got != tt.want {
				t.Errorf("IsDescendant(%q, %q) = %v, want %v", tt.parent, tt.child, got, tt.want)
			}
		})
	}
}

func TestCascadeTargets(t *testing.T) {
	active := []destinations.Destination{
		{Path: "/A"},
		{Path: "/A/B"},
		{Path: "/A/B/C"},
		{Path: "/D"},
	}

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"root of subtree", "/A", []string{"/A", "/A/B", "/A/B/C"}},
		{"mid subtree", "/A/B", []string{"/A/B", "/A/B/C"}},
		{"leaf", "/D", []string{"/D"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := destinations.CascadeTargets(tt.target, active)

			if len(got) != len(tt.want) {
				t.Fatalf("CascadeTargets(%q) returned %d targets, want %d",
					tt.target, len(got), len(tt.want))
			}
			for i, d := range got {
				if d.Path != tt.want[i] {
					t.Errorf("target[%d] = %q, want %q", i, d.Path, tt.want[i])
				}
			}
		})
	}
}
