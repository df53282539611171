package validation

import (
	"strings"
	"testing"
)

type smtpSettings struct {
	Host string `validate:"required,hostname|ip"`
	Port int    `validate:"gt=0,lte=65535"`
}

func TestStruct_Valid(t *testing.T) {
	if err := Struct(smtpSettings{Host: "smtp.example.com", Port: 587}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStruct_InvalidDescribed(t *testing.T) {
	err := Struct(smtpSettings{Host: "", Port: 0})
	if err == nil {
		t.Fatal("expected validation error")
	}
	desc := Describe(err)
	if !strings.Contains(desc, "host") {
		t.Errorf("expected description to name host: %q", desc)
	}
	if !strings.Contains(desc, "port") {
		t.Errorf("expected description to name port: %q", desc)
	}
}
