package primkit

import (
	"errors"
	"fmt"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrInvalidEncoding, "ErrInvalidEncoding"},
		{ErrInvalidKey, "ErrInvalidKey"},
		{ErrInvalidPublicKey, "ErrInvalidPublicKey"},
		{ErrInvalidSignature, "ErrInvalidSignature"},
		{ErrAuthenticationFailure, "ErrAuthenticationFailure"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "some error"},
		"some error",
	}, {
		MakeError(ErrInvalidKey, "private scalar is zero"),
		"private scalar is zero",
	}}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as being
// a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrInvalidKey == ErrInvalidKey",
		err:       ErrInvalidKey,
		target:    ErrInvalidKey,
		wantMatch: true,
		wantAs:    ErrInvalidKey,
	}, {
		name:      "Error.ErrInvalidKey == ErrInvalidKey",
		err:       MakeError(ErrInvalidKey, ""),
		target:    ErrInvalidKey,
		wantMatch: true,
		wantAs:    ErrInvalidKey,
	}, {
		name:      "Error.ErrInvalidKey == Error.ErrInvalidKey",
		err:       MakeError(ErrInvalidKey, ""),
		target:    MakeError(ErrInvalidKey, ""),
		wantMatch: true,
		wantAs:    ErrInvalidKey,
	}, {
		name:      "wrapped Error.ErrAuthenticationFailure == ErrAuthenticationFailure",
		err:       fmt.Errorf("decrypt: %w", MakeError(ErrAuthenticationFailure, "tag mismatch")),
		target:    ErrAuthenticationFailure,
		wantMatch: true,
		wantAs:    ErrAuthenticationFailure,
	}, {
		name:      "ErrInvalidPublicKey != ErrInvalidKey",
		err:       ErrInvalidPublicKey,
		target:    ErrInvalidKey,
		wantMatch: false,
		wantAs:    ErrInvalidPublicKey,
	}, {
		name:      "Error.ErrInvalidSignature != Error.ErrInvalidEncoding",
		err:       MakeError(ErrInvalidSignature, ""),
		target:    MakeError(ErrInvalidEncoding, ""),
		wantMatch: false,
		wantAs:    ErrInvalidSignature,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error kind can be unwrapped and is the
		// expected kind.
		kind, ok := KindOf(test.err)
		if !ok {
			t.Errorf("%s: unable to unwrap to error kind", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error kind -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}

func TestKindOfForeignError(t *testing.T) {
	if _, ok := KindOf(errors.New("io failure")); ok {
		t.Fatalf("expected no kind for a foreign error")
	}
	if _, ok := KindOf(nil); ok {
		t.Fatalf("expected no kind for nil")
	}
}
