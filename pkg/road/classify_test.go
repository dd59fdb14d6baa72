package road

import "testing"

func TestClassifySuffix(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Main Street", "street"},
		{"Main street", "street"},
		{"5th Avenue", "avenue"},
		{"GRANVILLE BRIDGE", "bridge"},
		{"Broadway", "broadway"},
		{"  Oak   Street  ", "street"},
		{"", SuffixUnknown},
		{"   ", SuffixUnknown},
		{"\t\n", SuffixUnknown},
	}
	for _, c := range cases {
		if got := ClassifySuffix(c.name); got != c.want {
			t.Errorf("ClassifySuffix(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestSegmentSuffix(t *testing.T) {
	if got := (Segment{Name: "Main Street"}).Suffix(); got != "street" {
		t.Errorf("Segment.Suffix() = %q", got)
	}
	if got := (Segment{}).Suffix(); got != SuffixUnknown {
		t.Errorf("unnamed segment suffix = %q", got)
	}
}

func TestClassifySuffixDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if ClassifySuffix("Main Street") != "street" {
			t.Fatal("classification is not stable")
		}
	}
}

func TestClassifierAliases(t *testing.T) {
	c := Classifier{Aliases: map[string]string{"st": "street", "ave": "Avenue"}}
	if got := c.Classify("Main St"); got != "street" {
		t.Errorf("alias not applied: %q", got)
	}
	if got := c.Classify("5th Ave"); got != "avenue" {
		t.Errorf("alias value not case folded: %q", got)
	}
	if got := c.Classify("Main Street"); got != "street" {
		t.Errorf("non-aliased suffix changed: %q", got)
	}
	if got := c.Classify(""); got != SuffixUnknown {
		t.Errorf("empty name: %q", got)
	}

	// Without a table the classifier must not expand anything.
	var plain Classifier
	if got := plain.Classify("Main St"); got != "st" {
		t.Errorf("zero-value classifier expanded %q", got)
	}
}
