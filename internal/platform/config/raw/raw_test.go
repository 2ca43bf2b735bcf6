package raw

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("RAWTEST_NAME", "  fr_core_news_md  ")
	c := New().Prefix("RAWTEST_")
	if got := c.Get("NAME", "x"); got != "fr_core_news_md" {
		t.Fatalf("Get = %q", got)
	}
	if got := c.Get("MISSING", "fallback"); got != "fallback" {
		t.Fatalf("Get default = %q", got)
	}
}

func TestGetBool(t *testing.T) {
	cases := map[string]bool{"1": true, "true": true, "yes": true, "no": false, "0": false}
	c := New().Prefix("RAWTEST_")
	for in, want := range cases {
		t.Setenv("RAWTEST_FLAG", in)
		if got := c.GetBool("FLAG", !want); got != want {
			t.Fatalf("GetBool(%q) = %v, want %v", in, got, want)
		}
	}
	if !c.GetBool("UNSET_FLAG", true) {
		t.Fatalf("GetBool default should win when unset")
	}
}

func TestGetInt(t *testing.T) {
	c := New().Prefix("RAWTEST_")
	t.Setenv("RAWTEST_N", "120000")
	if got := c.GetInt("N", 7); got != 120000 {
		t.Fatalf("GetInt = %d", got)
	}
	t.Setenv("RAWTEST_N", "not-a-number")
	if got := c.GetInt("N", 7); got != 7 {
		t.Fatalf("GetInt invalid = %d, want default", got)
	}
}
