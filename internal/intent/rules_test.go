package intent

import (
	"strings"
	"testing"
)

func TestCorrect(t *testing.T) {
	cases := []struct {
		name      string
		current   Intent
		last      Intent
		text      string
		want      Intent
		wantRules string
	}{
		{
			name:      "Spurious profile downgraded to general",
			current:   Profile,
			text:      "what is the capital of France",
			want:      General,
			wantRules: "profile-pattern-authority",
		},
		{
			name:      "Missed profile query forced to profile",
			current:   General,
			text:      "what's my name?",
			want:      Profile,
			wantRules: "profile-pattern-authority",
		},
		{
			name:      "Profile pattern in Turkish",
			current:   General,
			text:      "benim adım nedir",
			want:      Profile,
			wantRules: "profile-pattern-authority",
		},
		{
			name:      "Document keywords override events",
			current:   Events,
			text:      "when is the application deadline",
			want:      Document,
			wantRules: "document-keywords-over-events",
		},
		{
			name:      "Events without document keywords stays events",
			current:   Events,
			text:      "what concerts are on this weekend",
			want:      Events,
			wantRules: "",
		},
		{
			name:      "Document continuation on follow-up cue",
			current:   General,
			last:      Document,
			text:      "what about for masters students",
			want:      Document,
			wantRules: "document-continuation",
		},
		{
			name:      "Document continuation on document keyword",
			current:   General,
			last:      Document,
			text:      "do they ask for a transcript",
			want:      Document,
			wantRules: "document-continuation",
		},
		{
			name:      "Greeting breaks document continuation",
			current:   General,
			last:      Document,
			text:      "hi, how are you today",
			want:      General,
			wantRules: "",
		},
		{
			name:      "Greeting with document vocabulary keeps continuation",
			current:   General,
			last:      Document,
			text:      "hello, what about the visa requirement",
			want:      Document,
			wantRules: "document-continuation",
		},
		{
			name:      "No continuation when last intent differs",
			current:   General,
			last:      Events,
			text:      "what about for masters students",
			want:      General,
			wantRules: "",
		},
		{
			name:      "Support answer never pulled into continuation",
			current:   Support,
			last:      Document,
			text:      "I feel homesick, what about calling my family more",
			want:      Support,
			wantRules: "",
		},
		{
			// The profile downgrade must not swallow a document follow-up:
			// after rule one rewrites profile to general, the continuation
			// rule still sees the corrected intent and pulls it back.
			name:      "Profile downgrade chains into document continuation",
			current:   Profile,
			last:      Document,
			text:      "how about the application website?",
			want:      Document,
			wantRules: "profile-pattern-authority,document-continuation",
		},
		{
			name:      "Events with document keywords chains into continuation",
			current:   Events,
			last:      Document,
			text:      "what about the tuition fee there",
			want:      Document,
			wantRules: "document-keywords-over-events,document-continuation",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, fired := Correct(tc.current, tc.last, tc.text)
			if got != tc.want {
				t.Errorf("Correct(%s, %s, %q) = %s, want %s", tc.current, tc.last, tc.text, got, tc.want)
			}
			if joined := strings.Join(fired, ","); joined != tc.wantRules {
				t.Errorf("fired rules = %q, want %q", joined, tc.wantRules)
			}
		})
	}
}

func TestParse(t *testing.T) {
	if got := Parse("document"); got != Document {
		t.Errorf("unexpected parse: %s", got)
	}
	if got := Parse("banana"); got != General {
		t.Errorf("out-of-vocabulary answers must resolve to general, got %s", got)
	}
	if got := Parse(""); got != General {
		t.Errorf("empty answer must resolve to general, got %s", got)
	}
}

func TestIsProfileQuery(t *testing.T) {
	positives := []string{
		"What's my name?",
		"who am I",
		"cuál es mi nombre",
		"wie heiße ich",
		"ما اسمي",
	}
	for _, text := range positives {
		if !IsProfileQuery(text) {
			t.Errorf("expected profile query: %q", text)
		}
	}
	if IsProfileQuery("what is the name of the rector") {
		t.Error("non-profile question matched")
	}
}
