package errors

import (
	"strings"
	"testing"
)

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("MultiClass", "Predict")

	var nfe *NotFittedError
	if !As(err, &nfe) {
		t.Fatalf("expected error to unwrap to *NotFittedError, got %T", err)
	}
	if nfe.ModelName != "MultiClass" || nfe.Method != "Predict" {
		t.Errorf("unexpected fields: %+v", nfe)
	}
	if !strings.Contains(err.Error(), "not fitted") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestDimensionError(t *testing.T) {
	err := NewDimensionError("Dense.Add", 3, 5)

	var de *DimensionError
	if !As(err, &de) {
		t.Fatalf("expected error to unwrap to *DimensionError, got %T", err)
	}
	if de.Expected != 3 || de.Got != 5 {
		t.Errorf("unexpected fields: %+v", de)
	}
	if !strings.Contains(err.Error(), "dimension mismatch") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("indices", "must be strictly increasing", []int{3, 1})

	var ve *ValidationError
	if !As(err, &ve) {
		t.Fatalf("expected error to unwrap to *ValidationError, got %T", err)
	}
	if ve.ParamName != "indices" {
		t.Errorf("unexpected param name: %s", ve.ParamName)
	}
}

func TestModelErrorUnwrap(t *testing.T) {
	cause := ErrEmptyData
	err := NewModelError("Learn", "empty data", cause)

	if !Is(err, cause) {
		t.Errorf("expected errors.Is to find the wrapped cause")
	}
}

func TestWarnHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(nil)

	warning := NewConvergenceWarning("oneslack", 200, "")
	Warn(warning)

	if captured == nil {
		t.Fatal("warning handler was not invoked")
	}
	if !strings.Contains(captured.Error(), "failed to converge after 200 iterations") {
		t.Errorf("unexpected warning message: %s", captured.Error())
	}
}
