package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/rescheduler/internal/core/domain"
)

func TestTighten(t *testing.T) {
	tests := []struct {
		a, b domain.AccessClass
		want domain.AccessClass
	}{
		{domain.Unconstrained, domain.Unconstrained, domain.Unconstrained},
		{domain.Unconstrained, domain.ClassA, domain.ClassA},
		{domain.ClassB, domain.Unconstrained, domain.ClassB},
		{domain.ClassA, domain.ClassA, domain.ClassA},
		{domain.ClassA, domain.ClassB, domain.Infeasible},
		{domain.ClassB, domain.ClassA, domain.Infeasible},
		{domain.Infeasible, domain.Unconstrained, domain.Infeasible},
		{domain.ClassA, domain.Infeasible, domain.Infeasible},
	}

	for _, tt := range tests {
		t.Run(tt.a.String()+"+"+tt.b.String(), func(t *testing.T) {
			if got := domain.Tighten(tt.a, tt.b); got != tt.want {
				t.Errorf("Tighten(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAccessClass_Admits(t *testing.T) {
	if !domain.Unconstrained.Admits(domain.ClassA) {
		t.Errorf("expected unconstrained requester to admit class A")
	}
	if domain.ClassA.Admits(domain.ClassB) {
		t.Errorf("expected class A requester to reject class B")
	}
}

func TestParseAccessClass(t *testing.T) {
	valid := map[string]domain.AccessClass{
		"":              domain.Unconstrained,
		"any":           domain.Unconstrained,
		"Unconstrained": domain.Unconstrained,
		"a":             domain.ClassA,
		"classA":        domain.ClassA,
		" B ":           domain.ClassB,
		"classb":        domain.ClassB,
	}
	for in, want := range valid {
		got, err := domain.ParseAccessClass(in)
		if err != nil {
			t.Errorf("ParseAccessClass(%q) returned error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseAccessClass(%q) = %v, want %v", in, got, want)
		}
	}

	_, err := domain.ParseAccessClass("infeasible")
	if !errors.Is(err, domain.ErrUnknownAccessClass) {
		t.Errorf("expected ErrUnknownAccessClass, got %v", err)
	}
}
