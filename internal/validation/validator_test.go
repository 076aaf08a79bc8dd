package validation

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

type testForm struct {
	Title   string `form:"title" validate:"required,max=10"`
	Content string `form:"content" validate:"required"`
}

func TestValidate(t *testing.T) {
	v := New()

	if err := v.Validate(testForm{Title: "Hello", Content: "World"}); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	err := v.Validate(testForm{Title: strings.Repeat("a", 11)})
	if err == nil {
		t.Fatal("expected an error")
	}

	var validationErrs Errors
	if !errors.As(err, &validationErrs) {
		t.Fatalf("expected validation.Errors, got %T", err)
	}

	if e, g := 2, len(validationErrs); e != g {
		t.Fatalf("len(validationErrs): expected %v, got %v", e, g)
	}

	titleErrs := validationErrs.For("title")
	if e, g := 1, len(titleErrs); e != g {
		t.Fatalf("len(titleErrs): expected %v, got %v", e, g)
	}

	if e, g := "Ensure this value has at most 10 characters (it has 11).", titleErrs[0]; e != g {
		t.Errorf("titleErrs[0]: expected '%v', got '%v'", e, g)
	}

	if e, g := "This field is required.", validationErrs.For("content")[0]; e != g {
		t.Errorf("content error: expected '%v', got '%v'", e, g)
	}

	if e, g := 0, len(validationErrs.For("unknown")); e != g {
		t.Errorf("len(unknown errors): expected %v, got %v", e, g)
	}
}

func TestMaxLength(t *testing.T) {
	if e, g := 10, MaxLength(testForm{}, "Title"); e != g {
		t.Errorf("MaxLength(Title): expected %v, got %v", e, g)
	}

	if e, g := 10, MaxLength(&testForm{}, "Title"); e != g {
		t.Errorf("MaxLength(&Title): expected %v, got %v", e, g)
	}

	if e, g := 0, MaxLength(testForm{}, "Content"); e != g {
		t.Errorf("MaxLength(Content): expected %v, got %v", e, g)
	}

	if e, g := 0, MaxLength(testForm{}, "Unknown"); e != g {
		t.Errorf("MaxLength(Unknown): expected %v, got %v", e, g)
	}
}
