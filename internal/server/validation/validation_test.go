package validation

import (
	"reflect"
	"testing"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"user@example.com", "user@example.com"},
		{"  A@B.com ", "a@b.com"},
		{"MiXeD@Example.COM", "mixed@example.com"},
	}
	for _, tc := range tests {
		if got := NormalizeEmail(tc.in); got != tc.want {
			t.Fatalf("NormalizeEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCheckCredentials_Valid(t *testing.T) {
	if msgs := CheckCredentials("user@example.com", "Abcdef1!"); len(msgs) != 0 {
		t.Fatalf("expected no violations, got %v", msgs)
	}
}

func TestCheckCredentials_Email(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{name: "missing", email: "", want: "Email is required"},
		{name: "no at sign", email: "userexample.com", want: "Invalid email format"},
		{name: "bad tld", email: "user@example.c", want: "Invalid email format"},
		{name: "long tld", email: "user@example.company", want: "Invalid email format"},
		{name: "too short", email: "a@bc.de", want: "Email must be at least 8 characters long"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msgs := CheckCredentials(tc.email, "Abcdef1!")
			if len(msgs) != 1 || msgs[0] != tc.want {
				t.Fatalf("CheckCredentials(%q) = %v, want [%q]", tc.email, msgs, tc.want)
			}
		})
	}
}

func TestCheckCredentials_PasswordSingleMissingClass(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{name: "no uppercase", password: "abcdef1!", want: "Password must contain at least one uppercase letter"},
		{name: "no lowercase", password: "ABCDEF1!", want: "Password must contain at least one lowercase letter"},
		{name: "no digit", password: "Abcdefg!", want: "Password must contain at least one number"},
		{name: "no special", password: "Abcdefg1", want: "Password must contain at least one special character (@$!%*?&)"},
		{name: "too short", password: "Abcd1!x", want: "Password must be at least 8 characters long"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msgs := CheckCredentials("user@example.com", tc.password)
			if len(msgs) != 1 || msgs[0] != tc.want {
				t.Fatalf("CheckCredentials(password=%q) = %v, want [%q]", tc.password, msgs, tc.want)
			}
		})
	}
}

func TestCheckCredentials_PasswordCollectsAllViolations(t *testing.T) {
	// Short, digits only: every class rule plus the length rule fails.
	msgs := CheckCredentials("user@example.com", "1234")
	want := []string{
		"Password must be at least 8 characters long",
		"Password must contain at least one uppercase letter",
		"Password must contain at least one lowercase letter",
		"Password must contain at least one special character (@$!%*?&)",
	}
	if !reflect.DeepEqual(msgs, want) {
		t.Fatalf("got %v, want %v", msgs, want)
	}
}

func TestCheckCredentials_MissingPasswordShortCircuits(t *testing.T) {
	msgs := CheckCredentials("user@example.com", "")
	if len(msgs) != 1 || msgs[0] != "Password is required" {
		t.Fatalf("got %v, want [Password is required]", msgs)
	}
}

func TestCheckCredentials_EmailBeforePassword(t *testing.T) {
	msgs := CheckCredentials("", "")
	want := []string{"Email is required", "Password is required"}
	if !reflect.DeepEqual(msgs, want) {
		t.Fatalf("got %v, want %v", msgs, want)
	}
}

func TestError_JoinsMessages(t *testing.T) {
	e := &Error{Messages: []string{"a", "b"}}
	if e.Error() != "a; b" {
		t.Fatalf("got %q", e.Error())
	}
}
