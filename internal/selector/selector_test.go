package selector

import (
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/jmreicha/awsp/internal/fuzzy"
)

// fakeAsk records the prompt it was given and answers with a fixed index.
type fakeAsk struct {
	answer int
	err    error
	prompt *survey.Select
}

func (f *fakeAsk) ask(p survey.Prompt, response interface{}, _ ...survey.AskOpt) error {
	f.prompt = p.(*survey.Select)
	if f.err != nil {
		return f.err
	}
	*(response.(*int)) = f.answer
	return nil
}

func TestChoices(t *testing.T) {
	got := Choices([]string{"default", "work", "default"})
	want := []fuzzy.Choice{
		{Title: NoneTitle, Value: NoneValue},
		{Title: "default", Value: "default"},
		{Title: "work", Value: "work"},
		{Title: "default", Value: "default"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Choices() = %v, want %v", got, want)
	}
}

func TestInitialIndex(t *testing.T) {
	choices := Choices([]string{"default", "work"})

	tests := []struct {
		name    string
		current string
		want    int
	}{
		{name: "unset", current: "", want: 0},
		{name: "known profile", current: "work", want: 2},
		{name: "unknown profile", current: "ghost", want: 0},
		{name: "sentinel", current: NoneValue, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InitialIndex(choices, tt.current); got != tt.want {
				t.Fatalf("InitialIndex(%q) = %d, want %d", tt.current, got, tt.want)
			}
		})
	}
}

func TestSelect_ReturnsChosenProfile(t *testing.T) {
	fake := &fakeAsk{answer: 2}
	s := New(WithAsk(fake.ask))

	got, err := s.Select([]string{"default", "work"}, "default")
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if got != "work" {
		t.Fatalf("expected work, got %q", got)
	}

	if fake.prompt.Message != defaultMessage {
		t.Errorf("unexpected message %q", fake.prompt.Message)
	}
	if !reflect.DeepEqual(fake.prompt.Options, []string{NoneTitle, "default", "work"}) {
		t.Errorf("unexpected options %v", fake.prompt.Options)
	}
	if fake.prompt.Default != 1 {
		t.Errorf("expected default index 1, got %v", fake.prompt.Default)
	}
	if fake.prompt.PageSize != DefaultPageSize {
		t.Errorf("expected page size %d, got %d", DefaultPageSize, fake.prompt.PageSize)
	}
}

func TestSelect_NoneChoice(t *testing.T) {
	fake := &fakeAsk{answer: 0}
	s := New(WithAsk(fake.ask))

	got, err := s.Select([]string{"work"}, "")
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if got != NoneValue {
		t.Fatalf("expected sentinel, got %q", got)
	}
}

func TestSelect_FilterUsesTokenMatch(t *testing.T) {
	fake := &fakeAsk{answer: 0}
	s := New(WithAsk(fake.ask))

	if _, err := s.Select([]string{"default", "work", "dev-sandbox"}, ""); err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	filter := fake.prompt.Filter
	if filter == nil {
		t.Fatal("expected a filter on the prompt")
	}
	if !filter("sand dev", "dev-sandbox", 3) {
		t.Error("expected tokens in any order to match")
	}
	if filter("de wor", "work", 2) {
		t.Error("expected missing token to reject")
	}
	if !filter("", "[none]", 0) {
		t.Error("expected empty filter to match")
	}
}

func TestSelect_PageSize(t *testing.T) {
	fake := &fakeAsk{answer: 0}
	s := New(WithAsk(fake.ask), WithPageSize(5))

	if _, err := s.Select([]string{"a"}, ""); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if fake.prompt.PageSize != 5 {
		t.Fatalf("expected page size 5, got %d", fake.prompt.PageSize)
	}

	s = New(WithAsk(fake.ask), WithPageSize(0))
	if s.pageSize != DefaultPageSize {
		t.Fatalf("expected non-positive size to keep default, got %d", s.pageSize)
	}
}

func TestSelect_Cancelled(t *testing.T) {
	for _, cause := range []error{terminal.InterruptErr, io.EOF} {
		fake := &fakeAsk{err: cause}
		s := New(WithAsk(fake.ask))

		_, err := s.Select([]string{"work"}, "")
		if !errors.Is(err, ErrCancelled) {
			t.Fatalf("expected ErrCancelled for %v, got %v", cause, err)
		}
	}
}

func TestSelect_PromptError(t *testing.T) {
	boom := errors.New("terminal unavailable")
	fake := &fakeAsk{err: boom}
	s := New(WithAsk(fake.ask))

	_, err := s.Select([]string{"work"}, "")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped prompt error, got %v", err)
	}
	if errors.Is(err, ErrCancelled) {
		t.Fatal("prompt failure must not be reported as cancellation")
	}
}

func TestSelect_OutOfRangeAnswer(t *testing.T) {
	fake := &fakeAsk{answer: 9}
	s := New(WithAsk(fake.ask))

	if _, err := s.Select([]string{"work"}, ""); err == nil {
		t.Fatal("expected error for out-of-range answer")
	}
}
