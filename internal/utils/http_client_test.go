package utils

import (
	"testing"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	if client == nil || client.Client == nil {
		t.Fatal("expected HTTPClient with a non-nil embedded resty client")
	}
}

func TestNewHTTPClient_IndependentInstances(t *testing.T) {
	a := NewHTTPClient()
	b := NewHTTPClient()

	if a.Client == b.Client {
		t.Fatal("expected each HTTPClient to own its own *resty.Client")
	}
}

func TestUUIDGenerator_Generate(t *testing.T) {
	gen := NewUUIDGenerator()

	first := gen.Generate()
	second := gen.Generate()

	if first == "" || second == "" {
		t.Fatal("expected non-empty identifiers")
	}
	if first == second {
		t.Fatalf("expected unique identifiers, both were %q", first)
	}
}
