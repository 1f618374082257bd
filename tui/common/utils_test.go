package common

import (
	"testing"
	"time"
)

func TestStripMarkup_TagsAndBreaks(t *testing.T) {
	in := "<p>hello</p><p>world<br/>again</p>"
	got := StripMarkup(in)
	want := "hello\nworld\nagain\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestStripMarkup_PlainTextUntouched(t *testing.T) {
	if got := StripMarkup("just text"); got != "just text" {
		t.Fatalf("got %q", got)
	}
}

func TestRelTime_Buckets(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		age  time.Duration
		want string
	}{
		{30 * time.Second, "now"},
		{5 * time.Minute, "5m"},
		{3 * time.Hour, "3h"},
		{49 * time.Hour, "2d"},
	}
	for _, c := range cases {
		if got := RelTime(now.Add(-c.age), now); got != c.want {
			t.Fatalf("age %v: got %q want %q", c.age, got, c.want)
		}
	}
	if got := RelTime(time.Time{}, now); got != "" {
		t.Fatalf("zero time: got %q", got)
	}
}
