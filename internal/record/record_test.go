package record

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tacogips/scmver/internal/scm"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Record
	}{
		{
			name:  "plain tag",
			input: "v1.0.0",
			want:  Record{Tag: "1.0.0"},
		},
		{
			name:  "upper case v",
			input: "V2.1",
			want:  Record{Tag: "2.1"},
		},
		{
			name:  "digit start",
			input: "3.4.5",
			want:  Record{Tag: "3.4.5"},
		},
		{
			name:  "git dirty",
			input: "v1.0.0-3-g1a2b3c4-dirty",
			want:  Record{SCM: scm.Git, Tag: "1.0.0", Dist: 3, Rev: 0x1a2b3c4, RevWidth: 7, Dirty: true},
		},
		{
			name:  "hg clean",
			input: "v0.9-12-h0ab",
			want:  Record{SCM: scm.Hg, Tag: "0.9", Dist: 12, Rev: 0xab, RevWidth: 3},
		},
		{
			name:  "bzr",
			input: "v2.0-8-b32",
			want:  Record{SCM: scm.Bzr, Tag: "2.0", Dist: 8, Rev: 0x32, RevWidth: 2},
		},
		{
			name:  "distance only",
			input: "v1.0-5",
			want:  Record{Tag: "1.0", Dist: 5},
		},
		{
			name:  "unknown scm letter",
			input: "v1.0-5-x123",
			want:  Record{Tag: "1.0", Dist: 5},
		},
		{
			name:  "long hash keeps seven digits",
			input: "v1.0-1-g1a2b3c4d",
			want:  Record{SCM: scm.Git, Tag: "1.0", Dist: 1, Rev: 0x1a2b3c4, RevWidth: 7},
		},
		{
			name:  "alternate git",
			input: "v1.2.3.git4.abc1234",
			want:  Record{SCM: scm.Git, Tag: "1.2.3", Dist: 4, Rev: 0xabc1234, RevWidth: 7},
		},
		{
			name:  "alternate hg dirty",
			input: "v1.2.hg7.00f1.dirty",
			want:  Record{SCM: scm.Hg, Tag: "1.2", Dist: 7, Rev: 0xf1, RevWidth: 4, Dirty: true},
		},
		{
			name:  "alternate bzr revision starting with b",
			input: "v3.bzr2.b1",
			want:  Record{SCM: scm.Bzr, Tag: "3", Dist: 2, Rev: 0xb1, RevWidth: 2},
		},
		{
			name:  "alternate git hash starting with b",
			input: "v3.git2.beef",
			want:  Record{SCM: scm.Git, Tag: "3", Dist: 2, Rev: 0xbeef, RevWidth: 4},
		},
		{
			name:  "alternate without revision",
			input: "v1.0.git9",
			want:  Record{SCM: scm.Git, Tag: "1.0", Dist: 9},
		},
		{
			name:  "embedded marker wins over dash",
			input: "v1.0-rc1.git3.abc",
			want:  Record{SCM: scm.Git, Tag: "1.0-rc1", Dist: 3, Rev: 0xabc, RevWidth: 3},
		},
		{
			name:  "dash tag suffix without distance",
			input: "v1.0-rc1",
			want:  Record{Tag: "1.0"},
		},
		{
			name:  "dirty marker too short",
			input: "v1.0-3-gabc-dirt",
			want:  Record{SCM: scm.Git, Tag: "1.0", Dist: 3, Rev: 0xabc, RevWidth: 3},
		},
		{
			name:  "dash suffix without digits",
			input: "v1.2.3-alpha.beta.gamma",
			want:  Record{Tag: "1.2.3"},
		},
		{
			name:  "long tag truncated",
			input: "v1234567890.1234567890",
			want:  Record{Tag: "1234567890.1234"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "no v prefix", input: "release-1.0"},
		{name: "dot separator without scm", input: "v1.0-3.abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Parse(%q) error = %v, want *ParseError", tt.input, err)
			}
			if parseErr.Input != tt.input {
				t.Errorf("ParseError.Input = %q, want %q", parseErr.Input, tt.input)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   string
	}{
		{name: "tag only", record: Record{Tag: "1.0.0"}, want: "v1.0.0"},
		{name: "tag only ignores revision and dirty", record: Record{SCM: scm.Git, Tag: "1.0.0", Rev: 0xabc, RevWidth: 3, Dirty: true}, want: "v1.0.0"},
		{name: "git", record: Record{SCM: scm.Git, Tag: "1.0.0", Dist: 3, Rev: 0x1a2b3c4, RevWidth: 7, Dirty: true}, want: "v1.0.0-3-g1a2b3c4-dirty"},
		{name: "zero padded", record: Record{SCM: scm.Hg, Tag: "2", Dist: 1, Rev: 0xf, RevWidth: 5}, want: "v2-1-h0000f"},
		{name: "bzr", record: Record{SCM: scm.Bzr, Tag: "2.0", Dist: 8, Rev: 50, RevWidth: 2}, want: "v2.0-8-b32"},
		{name: "tarball with distance", record: Record{Tag: "1.0", Dist: 4, Rev: 0xabc, RevWidth: 3}, want: "v1.0-4"},
		{name: "no revision", record: Record{SCM: scm.Git, Tag: "1.0", Dist: 4, Dirty: true}, want: "v1.0-4"},
		{name: "zero revision with width", record: Record{SCM: scm.Git, Tag: "1.0", Dist: 4, RevWidth: 3}, want: "v1.0-4-g000"},
		{name: "empty tag", record: Record{}, want: "v"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	tags := []string{"1.0.0", "0.1", "2024.10.15", "7", "1.2.3rc4"}
	kinds := []scm.Kind{scm.Git, scm.Bzr, scm.Hg}

	for _, tag := range tags {
		for _, kind := range kinds {
			for width := 1; width <= 7; width++ {
				for _, dirty := range []bool{false, true} {
					r := Record{SCM: kind, Tag: tag, Dist: uint32(width * 3), Dirty: dirty}
					// a value narrower than its width exercises zero padding
					r.SetRev(uint32(1)<<(4*(width-1)-(width-1)%4), width)

					text := r.String()
					got, err := Parse(text)
					if err != nil {
						t.Fatalf("Parse(%q) error = %v", text, err)
					}
					if got != r {
						t.Errorf("Parse(%q) = %+v, want %+v", text, got, r)
					}
					if again := got.String(); again != text {
						t.Errorf("re-serialized %q as %q", text, again)
					}
				}
			}
		}
	}
}

func TestRoundTripExactTag(t *testing.T) {
	records := []Record{
		{Tag: "1.0.0"},
		{SCM: scm.Git, Tag: "1.0.0", Rev: 0xabc, RevWidth: 3, Dirty: true},
		{SCM: scm.Hg, Tag: "0.0.1"},
	}
	for _, r := range records {
		got, err := Parse(r.String())
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", r.String(), err)
		}
		if got.Dist != 0 || got.HasRev() || got.Dirty {
			t.Errorf("Parse(%q) introduced distance or revision: %+v", r.String(), got)
		}
		if got.Tag != r.Tag {
			t.Errorf("Parse(%q) tag = %q, want %q", r.String(), got.Tag, r.Tag)
		}
	}
}

func TestWidthFidelity(t *testing.T) {
	for width := 1; width <= 7; width++ {
		hex := strings.Repeat("0", width-1) + "a"
		text := fmt.Sprintf("v1.0-2-g%s", hex)
		r, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", text, err)
		}
		if int(r.RevWidth) != width {
			t.Errorf("Parse(%q) width = %d, want %d", text, r.RevWidth, width)
		}
		if got := r.String(); got != text {
			t.Errorf("String() = %q, want %q", got, text)
		}
	}
}

func TestEqual(t *testing.T) {
	a := Record{SCM: scm.Git, Tag: "1.0", Rev: 0xabc, RevWidth: 3, Dirty: true}
	b := Record{SCM: scm.Git, Tag: "1.0"}
	if !a.Equal(b) {
		t.Error("records at the same tag should be equal regardless of revision")
	}

	a.Dist, b.Dist = 2, 2
	if a.Equal(b) {
		t.Error("records with distance should compare revision and dirty")
	}
}

func TestCompare(t *testing.T) {
	base := Record{SCM: scm.Git, Tag: "1.0", Dist: 3, Rev: 0xabc, RevWidth: 3}

	tests := []struct {
		name string
		a, b Record
		want int
	}{
		{name: "identical", a: base, b: base, want: 0},
		{name: "dirty after clean", a: withDirty(base), b: base, want: 1},
		{name: "clean before dirty", a: base, b: withDirty(base), want: -1},
		{name: "tags only at zero distance", a: Record{SCM: scm.Hg, Tag: "1.0", Rev: 1, RevWidth: 1}, b: Record{SCM: scm.Git, Tag: "1.0", Dirty: true}, want: 0},
		{name: "shorter tag first", a: Record{Tag: "1.0"}, b: Record{Tag: "1.0.1"}, want: -1},
		{name: "tag bytes", a: Record{Tag: "2.0"}, b: Record{Tag: "10.0"}, want: 1},
		{name: "scm kind first", a: Record{SCM: scm.Hg, Tag: "0.1", Dist: 1}, b: Record{SCM: scm.Git, Tag: "9.9", Dist: 1}, want: 1},
		{name: "distance", a: Record{SCM: scm.Git, Tag: "1.0", Dist: 2}, b: Record{SCM: scm.Git, Tag: "1.0", Dist: 10}, want: -1},
		{name: "one at tag", a: Record{SCM: scm.Git, Tag: "1.0"}, b: base, want: -1},
		{name: "revision", a: base, b: withRev(base, 0xabd), want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare() reversed = %d, want %d", got, -tt.want)
			}
		})
	}
}

func withDirty(r Record) Record {
	r.Dirty = true
	return r
}

func withRev(r Record, rev uint32) Record {
	r.Rev = rev
	return r
}

func TestDotted(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   string
	}{
		{name: "tag", record: Record{Tag: "1.0"}, want: "1.0"},
		{name: "git", record: Record{SCM: scm.Git, Tag: "1.0", Dist: 4, Rev: 0xabc1234, RevWidth: 7}, want: "1.0.git4.abc1234"},
		{name: "dirty tag", record: Record{SCM: scm.Git, Tag: "1.0", Dirty: true}, want: "1.0.dirty"},
		{name: "hg dirty", record: Record{SCM: scm.Hg, Tag: "0.3", Dist: 1, Rev: 0xf, RevWidth: 2, Dirty: true}, want: "0.3.hg1.0f.dirty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Dotted(); got != tt.want {
				t.Errorf("Dotted() = %q, want %q", got, tt.want)
			}
		})
	}

	// the dotted form is itself accepted by Parse
	r := Record{SCM: scm.Git, Tag: "1.0", Dist: 4, Rev: 0xabc1234, RevWidth: 7}
	got, err := Parse("v" + r.Dotted())
	if err != nil || got != r {
		t.Errorf("Parse(dotted) = (%+v, %v), want %+v", got, err, r)
	}

	if got := r.Macro("YUCK_SCMVER_VERSION"); got != "define(YUCK_SCMVER_VERSION, 1.0.git4.abc1234)" {
		t.Errorf("Macro() = %q", got)
	}
}

func TestSetTagTruncates(t *testing.T) {
	var r Record
	r.SetTag(strings.Repeat("9", 40))
	if len(r.Tag) != MaxTagLen {
		t.Errorf("SetTag() kept %d bytes, want %d", len(r.Tag), MaxTagLen)
	}
}
