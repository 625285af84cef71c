package jsonutil

import (
	"bytes"
	"strings"
	"testing"
)

type testStruct struct {
	Name string `json:"name"`
}

func TestUnmarshalWithContext(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "valid JSON",
			data:    []byte(`{"name":"test"}`),
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v testStruct
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), "test context") {
				t.Errorf("error %q does not carry context", err)
			}
			if !tt.wantErr && v.Name != "test" {
				t.Errorf("UnmarshalWithContext() v.Name = %q, want %q", v.Name, "test")
			}
		})
	}
}

func TestDecodeStrict(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantErr  bool
		wantName string
	}{
		{name: "valid", data: `{"name":"deck"}`, wantName: "deck"},
		{name: "empty input", data: "  \n", wantName: ""},
		{name: "unknown field", data: `{"name":"deck","colour":"red"}`, wantErr: true},
		{name: "trailing value", data: `{"name":"a"} {"name":"b"}`, wantErr: true},
		{name: "malformed", data: `{"name":`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v testStruct
			err := DecodeStrict([]byte(tt.data), &v, "deck.json")
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeStrict() error = %v, wantErr %v", err, tt.wantErr)
			}
			if v.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", v.Name, tt.wantName)
			}
		})
	}
}

func TestWriteIndent(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteIndent(&buf, map[string]string{"html": "<li>a</li>"}); err != nil {
		t.Fatalf("WriteIndent: %v", err)
	}
	want := "{\n  \"html\": \"<li>a</li>\"\n}\n"
	if buf.String() != want {
		t.Errorf("WriteIndent() = %q, want %q", buf.String(), want)
	}
}
