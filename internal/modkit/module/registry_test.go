package module

import "testing"

type fakePort interface{ Tag() string }

type fakePortImpl struct{ tag string }

func (f fakePortImpl) Tag() string { return f.tag }

func TestRegisterAndPortsAs(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("xp", fakePortImpl{tag: "extract"})

	got, ok := PortsAs[fakePort]("xp")
	if !ok || got.Tag() != "extract" {
		t.Fatalf("PortsAs = %v %v", got, ok)
	}

	if _, ok := PortsAs[fakePort]("missing"); ok {
		t.Fatalf("unknown module should not resolve")
	}
	if _, ok := PortsAs[interface{ Nope() }]("xp"); ok {
		t.Fatalf("wrong interface should not assert")
	}
}
