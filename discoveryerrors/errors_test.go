package discoveryerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestFetchError(t *testing.T) {
	t.Run("Error message with status code", func(t *testing.T) {
		err := &FetchError{URL: "https://sheets.googleapis.com/$discovery/rest?version=v4", StatusCode: 500}
		want := "HTTP error '500' loading schemas from 'https://sheets.googleapis.com/$discovery/rest?version=v4'"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with transport cause", func(t *testing.T) {
		err := &FetchError{URL: "https://x", Cause: errors.New("connection refused")}
		if err.Error() != "fetch error loading schemas from 'https://x': connection refused" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &FetchError{}
		if err.Error() != "fetch error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &FetchError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrFetch only", func(t *testing.T) {
		err := &FetchError{StatusCode: 404}
		if !errors.Is(err, ErrFetch) {
			t.Error("FetchError should match ErrFetch")
		}
		if errors.Is(err, ErrParse) || errors.Is(err, ErrSchemaNotFound) || errors.Is(err, ErrValidation) {
			t.Error("FetchError should not match other sentinels")
		}
	})
}

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ParseError{Source: "sheets_v4", Message: "missing schemas", Cause: errors.New("boom")}
		if err.Error() != "parse error in sheets_v4: missing schemas: boom" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrParse", func(t *testing.T) {
		if !errors.Is(&ParseError{}, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
	})

	t.Run("Cause is reachable through the chain", func(t *testing.T) {
		cause := errors.New("unexpected end of JSON input")
		wrapped := fmt.Errorf("loader: %w", &ParseError{Cause: cause})
		if !errors.Is(wrapped, cause) {
			t.Error("cause should be reachable via errors.Is")
		}
	})
}

func TestSchemaNotFoundError(t *testing.T) {
	t.Run("Error message names the ref", func(t *testing.T) {
		err := &SchemaNotFoundError{Name: "not_found", Ref: "discovery://schema/not_found"}
		if err.Error() != "schema for discovery://schema/not_found not found" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message falls back to the name", func(t *testing.T) {
		err := &SchemaNotFoundError{Name: "not_found"}
		if err.Error() != "schema for not_found not found" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("As extracts SchemaNotFoundError", func(t *testing.T) {
		var err error = fmt.Errorf("validator: %w", &SchemaNotFoundError{Name: "person"})
		var target *SchemaNotFoundError
		if !errors.As(err, &target) {
			t.Fatal("errors.As should extract SchemaNotFoundError")
		}
		if target.Name != "person" {
			t.Errorf("unexpected name: %s", target.Name)
		}
		if !errors.Is(err, ErrSchemaNotFound) {
			t.Error("wrapped SchemaNotFoundError should match ErrSchemaNotFound")
		}
	})
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Schema: "location", Message: "at '/zip': disallowed unevaluated property"}
	if err.Error() != "object does not conform to location: at '/zip': disallowed unevaluated property" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationError should match ErrValidation")
	}
	if errors.Is(err, ErrSchemaNotFound) {
		t.Error("ValidationError should not match ErrSchemaNotFound")
	}
}
