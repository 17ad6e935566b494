package phone

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"formatted russian", "+7 (999) 123-45-67", "79991234567"},
		{"leading 8 swapped", "89991234567", "79991234567"},
		{"bare 10 digits starting 9 kept as-is", "9991234567", "9991234567"},
		{"bare 10 digits starting 7 kept as-is", "7991234567", "7991234567"},
		{"bare 10 digits other prefix gets 7", "3451234567", "73451234567"},
		{"11 digits starting 7", "79991234567", "79991234567"},
		{"letters stripped", "abc79991234567def", "79991234567"},
		{"truncated to 15", "1234567890123456789", "123456789012345"},
		{"empty", "", ""},
		{"only junk", "+-() ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"+7 (999) 123-45-67", "89991234567", "9991234567", "12345", "1234567890123456789"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestIsValid(t *testing.T) {
	valid := []string{"79991234567", "9991234567", "123456789012345"}
	for _, v := range valid {
		if !IsValid(v) {
			t.Fatalf("expected %q to be valid", v)
		}
	}
	invalid := []string{"", "123456789", "7999123456a", "+79991234567"}
	for _, v := range invalid {
		if IsValid(v) {
			t.Fatalf("expected %q to be invalid", v)
		}
	}
}
