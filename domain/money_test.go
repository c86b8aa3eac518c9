package domain

import (
	"encoding/json"
	"testing"
)

func TestMoneyMarshalsWithTwoDecimals(t *testing.T) {
	cases := map[string]string{
		"87.5":  `"87.50"`,
		"29.50": `"29.50"`,
		"5":     `"5.00"`,
		"0.1":   `"0.10"`,
	}
	for in, want := range cases {
		m, err := MoneyFromString(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		got, err := json.Marshal(m)
		if err != nil {
			t.Fatalf("marshal %q: %v", in, err)
		}
		if string(got) != want {
			t.Errorf("marshal %q = %s, want %s", in, got, want)
		}
	}
}

func TestMoneyUnmarshalAcceptsNumbersAndStrings(t *testing.T) {
	for _, in := range []string{`12.5`, `"12.5"`, `"12.50"`} {
		var m Money
		if err := json.Unmarshal([]byte(in), &m); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if got := m.String(); got != "12.50" {
			t.Errorf("unmarshal %s = %s, want 12.50", in, got)
		}
	}
}

func TestMoneyUnmarshalRoundsExcessPrecision(t *testing.T) {
	cases := map[string]string{
		`"1.005"`: "1.01",
		`1.005`:   "1.01",
		`"2.004"`: "2.00",
		`"12.999"`: "13.00",
	}
	for in, want := range cases {
		var m Money
		if err := json.Unmarshal([]byte(in), &m); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if got := m.String(); got != want {
			t.Errorf("unmarshal %s = %s, want %s", in, got, want)
		}
	}
}

func TestMoneyStoreRoundTrip(t *testing.T) {
	m, err := MoneyFromString("87.5")
	if err != nil {
		t.Fatal(err)
	}
	v, err := m.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "87.50" {
		t.Errorf("Value() = %v, want 87.50", v)
	}

	var scanned Money
	if err := scanned.Scan("87.50"); err != nil {
		t.Fatal(err)
	}
	if !scanned.Equal(m.Decimal) {
		t.Errorf("Scan round trip = %s, want %s", scanned, m)
	}
}
