package db_models

import "testing"

func TestJSONMapScanSources(t *testing.T) {
	var fromBytes JSONMap
	if err := fromBytes.Scan([]byte(`{"q1":"fine"}`)); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if fromBytes["q1"] != "fine" {
		t.Fatalf("fromBytes = %v", fromBytes)
	}

	var fromString JSONMap
	if err := fromString.Scan(`{"q2":"better"}`); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if fromString["q2"] != "better" {
		t.Fatalf("fromString = %v", fromString)
	}

	var fromNull JSONMap
	if err := fromNull.Scan(nil); err != nil {
		t.Fatalf("scan null: %v", err)
	}
	if fromNull != nil {
		t.Fatalf("null column produced %v", fromNull)
	}

	var bad JSONMap
	if err := bad.Scan(42); err == nil {
		t.Fatal("scanning an int succeeded")
	}
}

func TestNilMapsValueAsNull(t *testing.T) {
	var m JSONMap
	v, err := m.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != nil {
		t.Fatalf("nil map valued as %v", v)
	}

	var f FlagMap
	if v, _ := f.Value(); v != nil {
		t.Fatalf("nil FlagMap valued as %v", v)
	}
}

func TestFlagMapRoundTrip(t *testing.T) {
	in := FlagMap{"q1": {AddToOneOnOne: true}}
	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	var out FlagMap
	if err := out.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !out["q1"].AddToOneOnOne || out["q1"].FlagForFollowUp {
		t.Fatalf("round trip flags = %+v", out["q1"])
	}
}
