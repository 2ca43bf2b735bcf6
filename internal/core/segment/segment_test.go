package segment

import (
	"reflect"
	"testing"
)

func TestSelectContextLine(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		want     string
		title    string
		strategy string
	}{
		{
			name:     "two headings title then context",
			raw:      "## Senior Engineer : Lead Dev\n## Acme Corp (Acme Group / Acme Intl) - Paris | 06/2021 - présent",
			want:     "Acme Corp (Acme Group / Acme Intl) - Paris | 06/2021 - présent",
			title:    "Senior Engineer : Lead Dev",
			strategy: StrategyHeadingFirst,
		},
		{
			name:     "single heading",
			raw:      "intro text\n### Dev backend | Acme | 2020 - 2022\ntrailing",
			want:     "Dev backend | Acme | 2020 - 2022",
			strategy: StrategyHeadingFirst,
		},
		{
			name:     "no heading first non-empty",
			raw:      "\n\nDev backend | Acme\nsecond line",
			want:     "Dev backend | Acme",
			strategy: StrategyFirstNonEmpty,
		},
		{
			name:     "crlf and whitespace collapse",
			raw:      "##   Dev   backend \t| Acme\r\nrest",
			want:     "Dev backend | Acme",
			strategy: StrategyHeadingFirst,
		},
		{
			name:     "mailto marker dropped",
			raw:      "mailto:jane@acme.example\nDev backend | Acme",
			want:     "jane@acme.example",
			strategy: StrategyFirstNonEmpty,
		},
		{
			name:     "hashes without space are not headings",
			raw:      "##NotAHeading | Acme",
			want:     "##NotAHeading | Acme",
			strategy: StrategyFirstNonEmpty,
		},
		{
			name:     "zero width chars stripped",
			raw:      "Dev​ backend | Ac‍me",
			want:     "Dev backend | Acme",
			strategy: StrategyFirstNonEmpty,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := SelectContextLine(tc.raw, Hints{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Line != tc.want {
				t.Fatalf("line = %q, want %q", res.Line, tc.want)
			}
			if res.TitleFromHeading != tc.title {
				t.Fatalf("title = %q, want %q", res.TitleFromHeading, tc.title)
			}
			if res.Strategy != tc.strategy {
				t.Fatalf("strategy = %q, want %q", res.Strategy, tc.strategy)
			}
			if len(res.HintsUsed) != 0 {
				t.Fatalf("no hints supplied but HintsUsed = %v", res.HintsUsed)
			}
		})
	}
}

func TestSelectContextLineEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\r\n\t", "​\n​"} {
		if _, err := SelectContextLine(raw, Hints{}); err != ErrNoContext {
			t.Fatalf("SelectContextLine(%q) err = %v, want ErrNoContext", raw, err)
		}
	}
}

func TestHintReconciliation(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		hints    Hints
		want     string
		used     []string
		strategy string
	}{
		{
			name:     "date hint prepended when no date",
			raw:      "Dev backend | Acme",
			hints:    Hints{Date: "06/2020 - 01/2021"},
			want:     "06/2020 - 01/2021 : Dev backend | Acme",
			used:     []string{HintDate},
			strategy: "first_non_empty|hint_merge",
		},
		{
			name:     "date hint skipped when date present",
			raw:      "Dev backend | Acme | 2020 - 2021",
			hints:    Hints{Date: "06/2020 - 01/2021"},
			want:     "Dev backend | Acme | 2020 - 2021",
			strategy: StrategyFirstNonEmpty,
		},
		{
			name:     "company hint appended",
			raw:      "Dev backend : Senior",
			hints:    Hints{Company: "Acme"},
			want:     "Dev backend : Senior | Acme",
			used:     []string{HintCompany},
			strategy: "first_non_empty|hint_merge",
		},
		{
			name:     "company hint skipped when pipe present",
			raw:      "Dev backend | Globex",
			hints:    Hints{Company: "Acme"},
			want:     "Dev backend | Globex",
			strategy: StrategyFirstNonEmpty,
		},
		{
			name:     "company hint skipped when already present",
			raw:      "Dev backend chez ACME",
			hints:    Hints{Company: "acme"},
			want:     "Dev backend chez ACME",
			strategy: StrategyFirstNonEmpty,
		},
		{
			name:     "location hint appended",
			raw:      "Dev backend | Acme",
			hints:    Hints{Location: "Paris"},
			want:     "Dev backend | Acme - Paris",
			used:     []string{HintLocation},
			strategy: "first_non_empty|hint_merge",
		},
		{
			name:     "location hint skipped when dash present",
			raw:      "Dev backend | Acme - Lyon",
			hints:    Hints{Location: "Paris"},
			want:     "Dev backend | Acme - Lyon",
			strategy: StrategyFirstNonEmpty,
		},
		{
			name:     "all three applied in order",
			raw:      "Dev backend",
			hints:    Hints{Date: "06/2020-01/2021", Company: "Acme", Location: "Paris"},
			want:     "06/2020-01/2021 : Dev backend | Acme - Paris",
			used:     []string{HintDate, HintCompany, HintLocation},
			strategy: "first_non_empty|hint_merge",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := SelectContextLine(tc.raw, tc.hints)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Line != tc.want {
				t.Fatalf("line = %q, want %q", res.Line, tc.want)
			}
			if res.Strategy != tc.strategy {
				t.Fatalf("strategy = %q, want %q", res.Strategy, tc.strategy)
			}
			if !reflect.DeepEqual(res.HintsUsed, tc.used) {
				t.Fatalf("hints used = %v, want %v", res.HintsUsed, tc.used)
			}
		})
	}
}

// Re-running segmentation on a previously returned line must be stable
func TestSelectContextLineIdempotent(t *testing.T) {
	first, err := SelectContextLine("## Dev backend : Senior\n## Acme Corp - Paris | 06/2021 - présent", Hints{})
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	second, err := SelectContextLine(first.Line, Hints{})
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if second.Line != first.Line {
		t.Fatalf("line drifted across passes: %q vs %q", second.Line, first.Line)
	}
}
