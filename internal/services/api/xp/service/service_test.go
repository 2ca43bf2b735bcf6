package service

import (
	"context"
	"strings"
	"testing"

	"candiqo/internal/nlp"
	perr "candiqo/internal/platform/errors"
	"candiqo/internal/services/api/xp/domain"
)

func tagNothing() nlp.Tagger {
	return nlp.TagFunc(func(context.Context, string) ([]nlp.Entity, error) { return nil, nil })
}

func tagOrg(name string) nlp.Tagger {
	return nlp.TagFunc(func(_ context.Context, text string) ([]nlp.Entity, error) {
		if i := strings.Index(text, name); i >= 0 {
			return []nlp.Entity{{Text: name, Label: nlp.LabelOrg, Start: i, End: i + len(name)}}, nil
		}
		return nil, nil
	})
}

func TestParsePinnedExample(t *testing.T) {
	svc := New(tagOrg("Acme Corp"), Options{})

	res, err := svc.Parse(context.Background(), domain.ParseInput{
		ID:  "xp-1",
		Raw: "## Senior Engineer : Lead Dev\n## Acme Corp (Acme Group / Acme Intl) - Paris | 06/2021 - présent",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.ID != "xp-1" {
		t.Fatalf("id = %q", res.ID)
	}
	if res.CompanyQuery != "Acme Corp" {
		t.Fatalf("company query = %q", res.CompanyQuery)
	}
	if res.DateRangeRaw != "06/2021 - présent" {
		t.Fatalf("date range = %q", res.DateRangeRaw)
	}
	if !strings.Contains(res.CtxLine, res.DateRangeRaw) {
		t.Fatalf("date range %q not a substring of ctx %q", res.DateRangeRaw, res.CtxLine)
	}
	if res.LocationRaw != "Paris" {
		t.Fatalf("location = %q", res.LocationRaw)
	}
	if got, want := res.CompanyGroupHints, []string{"Acme Group", "Acme Intl"}; len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("group hints = %v", got)
	}
	if !strings.Contains(res.TitleRaw, "Lead Dev") {
		t.Fatalf("title = %q", res.TitleRaw)
	}
	if res.Confidence < 0.9 {
		t.Fatalf("confidence = %v", res.Confidence)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("warnings = %v", res.Warnings)
	}
	if res.Debug != nil {
		t.Fatalf("debug payload present without the flag")
	}
}

func TestParseAssignsID(t *testing.T) {
	svc := New(tagNothing(), Options{})
	res, err := svc.Parse(context.Background(), domain.ParseInput{Raw: "Dev backend | Acme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ID == "" {
		t.Fatal("expected a generated id")
	}
}

func TestParseBlankRawIsValidation(t *testing.T) {
	svc := New(tagNothing(), Options{})
	for _, raw := range []string{"", "   ", "\n\t"} {
		_, err := svc.Parse(context.Background(), domain.ParseInput{Raw: raw})
		if !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("Parse(%q) code = %v, want validation", raw, perr.CodeOf(err))
		}
	}
}

func TestParseNoContextIs422(t *testing.T) {
	svc := New(tagNothing(), Options{})
	// non-blank input whose every line normalizes away
	_, err := svc.Parse(context.Background(), domain.ParseInput{Raw: "​\n​"})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("code = %v, want invalid argument", perr.CodeOf(err))
	}
}

func TestParseOversizedBeforeTagger(t *testing.T) {
	tagged := false
	tagger := nlp.TagFunc(func(context.Context, string) ([]nlp.Entity, error) {
		tagged = true
		return nil, nil
	})
	svc := New(tagger, Options{MaxChars: 10})

	_, err := svc.Parse(context.Background(), domain.ParseInput{Raw: strings.Repeat("a", 11)})
	if !perr.IsCode(err, perr.ErrorCodeTooLarge) {
		t.Fatalf("code = %v, want too large", perr.CodeOf(err))
	}
	if tagged {
		t.Fatal("tagger must not run for oversized input")
	}
}

func TestParseMaxCharsCountsRunes(t *testing.T) {
	svc := New(tagNothing(), Options{MaxChars: 10})
	// ten two-byte runes are within a ten-char bound
	if _, err := svc.Parse(context.Background(), domain.ParseInput{Raw: strings.Repeat("é", 10)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseDebugFlag(t *testing.T) {
	svc := New(tagNothing(), Options{})
	on := true

	res, err := svc.Parse(context.Background(), domain.ParseInput{
		Raw:   "Dev backend | Acme",
		Meta:  &domain.Meta{LocationHint: "Paris"},
		Debug: &on,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Debug == nil {
		t.Fatal("expected debug payload")
	}
	if res.Debug.Strategy != "first_non_empty|hint_merge" {
		t.Fatalf("strategy = %q", res.Debug.Strategy)
	}
	if len(res.Debug.HintsUsed) != 1 || res.Debug.HintsUsed[0] != "location_hint" {
		t.Fatalf("hints used = %v", res.Debug.HintsUsed)
	}
	if res.LocationRaw != "Paris" {
		t.Fatalf("location = %q", res.LocationRaw)
	}
}

func TestParseDebugDefault(t *testing.T) {
	svc := New(tagNothing(), Options{DebugDefault: true})
	res, err := svc.Parse(context.Background(), domain.ParseInput{Raw: "Dev backend | Acme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Debug == nil {
		t.Fatal("expected debug payload from the config default")
	}

	off := false
	res, err = svc.Parse(context.Background(), domain.ParseInput{Raw: "Dev backend | Acme", Debug: &off})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Debug != nil {
		t.Fatal("request flag must override the config default")
	}
}

func TestParseTaggerFailurePropagates(t *testing.T) {
	tagger := nlp.TagFunc(func(context.Context, string) ([]nlp.Entity, error) {
		return nil, perr.Unavailablef("sidecar down")
	})
	svc := New(tagger, Options{})
	_, err := svc.Parse(context.Background(), domain.ParseInput{Raw: "Dev backend | Acme"})
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("code = %v, want unavailable", perr.CodeOf(err))
	}
}

func TestCompanyLegacySubset(t *testing.T) {
	svc := New(tagOrg("Acme Corp"), Options{})
	res, err := svc.Company(context.Background(), domain.CompanyInput{
		Raw: "## Dev : Senior\n## Acme Corp (Acme Group) - Paris | 06/2021 - présent",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.CompanyQuery != "Acme Corp" {
		t.Fatalf("company query = %q", res.CompanyQuery)
	}
	if res.LocationRaw != "Paris" {
		t.Fatalf("location = %q", res.LocationRaw)
	}
	if res.DateRangeRaw != "06/2021 - présent" {
		t.Fatalf("date range = %q", res.DateRangeRaw)
	}
	if len(res.CompanyGroupHints) != 1 || res.CompanyGroupHints[0] != "Acme Group" {
		t.Fatalf("group hints = %v", res.CompanyGroupHints)
	}
}

func TestSimple(t *testing.T) {
	tagger := nlp.TagFunc(func(_ context.Context, text string) ([]nlp.Entity, error) {
		ents := []nlp.Entity{}
		for _, span := range []struct {
			text, label string
		}{
			{"Google", nlp.LabelOrg},
			{"Paris", nlp.LabelLoc},
			{"depuis 2020", nlp.LabelDate},
		} {
			if i := strings.Index(text, span.text); i >= 0 {
				start := len([]rune(text[:i]))
				ents = append(ents, nlp.Entity{Text: span.text, Label: span.label, Start: start, End: start + len([]rune(span.text))})
			}
		}
		return ents, nil
	})
	svc := New(tagger, Options{})

	res, err := svc.Simple(context.Background(), domain.SimpleInput{Text: "Ingénieur chez Google à Paris depuis 2020"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Orgs) != 1 || res.Orgs[0] != "Google" {
		t.Fatalf("orgs = %v", res.Orgs)
	}
	if len(res.Locations) != 1 || res.Locations[0] != "Paris" {
		t.Fatalf("locations = %v", res.Locations)
	}
	if len(res.Dates) != 1 || !strings.Contains(res.Dates[0], "2020") {
		t.Fatalf("dates = %v", res.Dates)
	}
	if res.JobTitle != "Ingénieur" {
		t.Fatalf("job title = %q", res.JobTitle)
	}
	if res.Debug != nil {
		t.Fatal("debug payload present without the flag")
	}
}

func TestSimpleBlankText(t *testing.T) {
	svc := New(tagNothing(), Options{})
	_, err := svc.Simple(context.Background(), domain.SimpleInput{Text: "  "})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("code = %v, want validation", perr.CodeOf(err))
	}
}

func TestEnts(t *testing.T) {
	svc := New(tagOrg("Acme"), Options{})

	ents, err := svc.Ents(context.Background(), domain.EntsInput{Text: "Acme est à Paris"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ents) != 1 || ents[0].Text != "Acme" {
		t.Fatalf("ents = %v", ents)
	}

	// empty text is allowed and yields an empty list
	ents, err = svc.Ents(context.Background(), domain.EntsInput{Text: ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ents == nil || len(ents) != 0 {
		t.Fatalf("ents = %#v, want empty non-nil", ents)
	}

	// oversized still rejected
	big := strings.Repeat("a", 120001)
	if _, err = svc.Ents(context.Background(), domain.EntsInput{Text: big}); !perr.IsCode(err, perr.ErrorCodeTooLarge) {
		t.Fatalf("code = %v, want too large", perr.CodeOf(err))
	}
}
