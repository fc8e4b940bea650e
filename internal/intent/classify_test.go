package intent

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type mockInvoker struct {
	invokeFunc func(prompt string) (string, error)
	prompts    []string
}

func (m *mockInvoker) Invoke(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.invokeFunc != nil {
		return m.invokeFunc(prompt)
	}
	return "general", nil
}

func TestClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("Short query takes zero-shot path", func(t *testing.T) {
		inv := &mockInvoker{invokeFunc: func(prompt string) (string, error) {
			return "profile", nil
		}}
		r := NewRouter(&mockLogger{}, inv)

		got := r.Classify(ctx, "what's my name", "")
		if got != Profile {
			t.Errorf("expected profile, got %s", got)
		}
		if len(inv.prompts) != 1 || strings.Contains(inv.prompts[0], "Examples:") {
			t.Error("expected the zero-shot prompt without worked examples")
		}
	})

	t.Run("Long query takes few-shot path", func(t *testing.T) {
		inv := &mockInvoker{invokeFunc: func(prompt string) (string, error) {
			return "document", nil
		}}
		r := NewRouter(&mockLogger{}, inv)

		got := r.Classify(ctx, "could you walk me through the residence permit application process please", Document)
		if got != Document {
			t.Errorf("expected document, got %s", got)
		}
		if len(inv.prompts) != 1 || !strings.Contains(inv.prompts[0], "Examples:") {
			t.Error("expected the few-shot prompt with worked examples")
		}
		if !strings.Contains(inv.prompts[0], "Last intent: document") {
			t.Error("few-shot prompt should carry the last intent")
		}
	})

	t.Run("Empty last intent rendered as none", func(t *testing.T) {
		inv := &mockInvoker{}
		r := NewRouter(&mockLogger{}, inv)

		r.Classify(ctx, "could you walk me through the residence permit application process please", "")
		if !strings.Contains(inv.prompts[0], "Last intent: none") {
			t.Error("expected 'Last intent: none' in prompt")
		}
	})

	t.Run("Whitespace and case in model answer are tolerated", func(t *testing.T) {
		inv := &mockInvoker{invokeFunc: func(prompt string) (string, error) {
			return "  Events \n", nil
		}}
		r := NewRouter(&mockLogger{}, inv)

		if got := r.Classify(ctx, "any concerts", ""); got != Events {
			t.Errorf("expected events, got %s", got)
		}
	})

	t.Run("Out-of-vocabulary answer resolves to general", func(t *testing.T) {
		inv := &mockInvoker{invokeFunc: func(prompt string) (string, error) {
			return "I think this is about admissions", nil
		}}
		r := NewRouter(&mockLogger{}, inv)

		if got := r.Classify(ctx, "any concerts", ""); got != General {
			t.Errorf("expected general, got %s", got)
		}
	})

	t.Run("Classifier failure resolves to general", func(t *testing.T) {
		inv := &mockInvoker{invokeFunc: func(prompt string) (string, error) {
			return "", errors.New("provider down")
		}}
		r := NewRouter(&mockLogger{}, inv)

		if got := r.Classify(ctx, "tell me everything about the application steps for my situation", ""); got != General {
			t.Errorf("expected general, got %s", got)
		}
	})
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Classification plus corrections", func(t *testing.T) {
		inv := &mockInvoker{invokeFunc: func(prompt string) (string, error) {
			return "events", nil
		}}
		r := NewRouter(&mockLogger{}, inv)

		got := r.Resolve(ctx, "when is the admission deadline for the fall program exactly", "")
		if got != Document {
			t.Errorf("expected document after correction, got %s", got)
		}
	})
}
