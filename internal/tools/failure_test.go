package tools_test

import (
	"errors"
	"testing"

	"github.com/kelsos/etherscan-tools/internal/client"
	"github.com/kelsos/etherscan-tools/internal/tools"
)

func TestNewFailureKeepsClassification(t *testing.T) {
	err := &client.Error{
		Kind:    client.KindNotVerified,
		Message: "contract 0xabc is not verified",
		URL:     "https://api.etherscan.io/v2/api?module=contract",
		Details: "Contract source code not verified",
	}

	failure := tools.NewFailure(err)
	if failure.Error.Kind != string(client.KindNotVerified) {
		t.Fatalf("unexpected kind: %q", failure.Error.Kind)
	}
	if failure.Error.URL == "" || failure.Error.Details == "" {
		t.Fatalf("classification fields must survive: %+v", failure.Error)
	}
}

func TestNewFailureWrappedErrorStillClassified(t *testing.T) {
	inner := &client.Error{Kind: client.KindAPI, Message: "NOTOK"}
	wrapped := errors.Join(errors.New("fetching contract"), inner)

	failure := tools.NewFailure(wrapped)
	if failure.Error.Kind != string(client.KindAPI) {
		t.Fatalf("expected classification through wrapping, got %q", failure.Error.Kind)
	}
}

func TestNewFailureGenericError(t *testing.T) {
	failure := tools.NewFailure(errors.New("something odd"))
	if failure.Error.Kind != "error" {
		t.Fatalf("unexpected kind: %q", failure.Error.Kind)
	}
	if failure.Error.Message != "something odd" {
		t.Fatalf("unexpected message: %q", failure.Error.Message)
	}
}

func TestFailureFromRecoveredNonError(t *testing.T) {
	failure := tools.FailureFromRecovered("exploded")
	if failure.Error.Message != "Unknown error: exploded" {
		t.Fatalf("unexpected message: %q", failure.Error.Message)
	}

	failure = tools.FailureFromRecovered(errors.New("real error"))
	if failure.Error.Message != "real error" {
		t.Fatalf("unexpected message: %q", failure.Error.Message)
	}
}
