// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH

package config

import (
	"encoding/json"
	"testing"
)

func TestDate(t *testing.T) {
	d, err := ParseDate("2022-08-16")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.String() != "2022-08-16" {
		t.Errorf("String() = %q", d.String())
	}

	for _, bad := range []string{"16.08.2022", "2022-13-01", "2022-02-30", "yesterday"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) accepted", bad)
		}
	}

	var parsed struct {
		EDate Date `json:"edate"`
	}
	if err := json.Unmarshal([]byte(`{"edate": "2023-01-02"}`), &parsed); err != nil {
		t.Fatalf("json date failed: %v", err)
	}
	out, err := json.Marshal(parsed)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"edate":"2023-01-02"}` {
		t.Errorf("marshal = %s", out)
	}

	var d2 Date
	for _, bad := range []string{`20220816`, `true`, `["2022-08-16"]`, `""2022-08-16""`} {
		if err := json.Unmarshal([]byte(bad), &d2); err == nil {
			t.Errorf("json date %s accepted", bad)
		}
	}
}

func TestMacAddr(t *testing.T) {
	m, err := ParseMac("c8:3e:a7:01:02:03")
	if err != nil {
		t.Fatalf("ParseMac failed: %v", err)
	}
	if m.String() != "C8:3E:A7:01:02:03" {
		t.Errorf("String() = %q", m.String())
	}

	for _, bad := range []string{"c8:3e:a7:01:02", "hello", "c8:3e:a7:01:02:03:04:05"} {
		if _, err := ParseMac(bad); err == nil {
			t.Errorf("ParseMac(%q) accepted", bad)
		}
	}

	var parsed struct {
		Mac MacAddr `json:"mac"`
	}
	if err := json.Unmarshal([]byte(`{"mac": "C8-3E-A7-01-02-03"}`), &parsed); err != nil {
		t.Fatalf("json mac failed: %v", err)
	}
	out, err := json.Marshal(parsed)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"mac":"C8:3E:A7:01:02:03"}` {
		t.Errorf("marshal = %s", out)
	}

	var m2 MacAddr
	for _, bad := range []string{`42`, `null`, `{"mac": "C8:3E:A7:01:02:03"}`, `""C8:3E:A7:01:02:03""`} {
		if err := json.Unmarshal([]byte(bad), &m2); err == nil {
			t.Errorf("json mac %s accepted", bad)
		}
	}
}
