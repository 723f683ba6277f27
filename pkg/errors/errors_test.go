package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	wrapped := Wrap(CodeDependency, cause, "saving order")

	if wrapped.Code() != CodeDependency {
		t.Fatalf("expected dependency code, got %s", wrapped.Code())
	}
	if !errors.Is(wrapped, cause) {
		t.Fatal("expected cause to survive wrapping")
	}
}

func TestAsFindsCodedErrorThroughChain(t *testing.T) {
	inner := New(CodeNotFound, "shift not found")
	outer := fmt.Errorf("handling callback: %w", inner)

	typed := As(outer)
	if typed == nil {
		t.Fatal("expected coded error in chain")
	}
	if typed.Code() != CodeNotFound {
		t.Fatalf("expected not found, got %s", typed.Code())
	}
}

func TestUserTextRecoverableUsesOwnMessage(t *testing.T) {
	err := New(CodeStateConflict, "You already have an open shift.")
	if got := UserText(err); got != "You already have an open shift." {
		t.Fatalf("unexpected user text %q", got)
	}
}

func TestUserTextInternalIsGeneric(t *testing.T) {
	err := Wrap(CodeInternal, errors.New("constraint violated"), "constraint violated")
	if got := UserText(err); got != metadataByCode[CodeInternal].UserMessage {
		t.Fatalf("internal errors must not leak, got %q", got)
	}
}

func TestUserTextUncodedIsGeneric(t *testing.T) {
	if got := UserText(errors.New("raw")); got != metadataByCode[CodeInternal].UserMessage {
		t.Fatalf("uncoded errors must not leak, got %q", got)
	}
}

func TestMetadataForUnknownCode(t *testing.T) {
	meta := MetadataFor(Code("NOPE"))
	if meta.Recoverable {
		t.Fatal("unknown codes must map to the internal metadata")
	}
}
