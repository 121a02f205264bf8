package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
	if loc := d1.Time().Location(); loc != time.UTC {
		t.Errorf("Time() location = %v, want UTC", loc)
	}
	if h, m, s := d1.Time().Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("Time() clock = %02d:%02d:%02d, want midnight", h, m, s)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"09/06/2020", New(2020, time.June, 9), false},
		{"01/01/1970", New(1970, time.January, 1), false},
		{"31/12/2024", New(2024, time.December, 31), false},
		{"29/02/2020", New(2020, time.February, 29), false},

		// Only zero-padded day and month are accepted.
		{"1/6/2020", Date{}, true},
		{"01/6/2020", Date{}, true},
		{"1/06/2020", Date{}, true},
		// Year must have four digits.
		{"09/06/20", Date{}, true},
		{"09/06/20201", Date{}, true},
		// No roll-over of out of range values.
		{"31/13/2020", Date{}, true},
		{"00/06/2020", Date{}, true},
		{"09/00/2020", Date{}, true},
		{"31/02/2020", Date{}, true},
		{"29/02/2021", Date{}, true},
		{"31/04/2020", Date{}, true},
		// Other formats.
		{"2020-06-09", Date{}, true},
		{"09-06-2020", Date{}, true},
		{"", Date{}, true},
		{"invalid-date", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.err {
				if err == nil {
					t.Errorf("Parse(%q) expected an error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestString(t *testing.T) {
	for _, s := range []string{"09/06/2020", "01/01/1970", "29/02/2020"} {
		if got := MustParse(s).String(); got != s {
			t.Errorf("MustParse(%q).String() = %q", s, got)
		}
	}
}

func TestNewNormalizes(t *testing.T) {
	if got, want := New(2020, time.February, 30), New(2020, time.March, 1); got != want {
		t.Errorf("New(2020, 2, 30) = %v, want %v", got, want)
	}
}

func TestBeforeAfter(t *testing.T) {
	a := MustParse("09/06/2020")
	b := MustParse("10/06/2020")
	if !a.Before(b) || a.After(b) {
		t.Errorf("%v should be before %v", a, b)
	}
	if !b.After(a) || b.Before(a) {
		t.Errorf("%v should be after %v", b, a)
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("%v is neither before nor after itself", a)
	}
}

func TestJSON(t *testing.T) {
	d := MustParse("09/06/2020")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if want := `"2020-06-09"`; string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}

	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if got != d {
		t.Errorf("json.Unmarshal() = %v, want %v", got, d)
	}

	if err := json.Unmarshal([]byte(`"09/06/2020"`), &got); err == nil {
		t.Errorf("json.Unmarshal() of a log formatted date should fail")
	}
}

func TestIsZero(t *testing.T) {
	if !(Date{}).IsZero() {
		t.Errorf("zero Date should be zero")
	}
	if MustParse("09/06/2020").IsZero() {
		t.Errorf("parsed Date should not be zero")
	}
}
