package clock

import "testing"

func TestNewTimeValidation(t *testing.T) {
	tests := []struct {
		name    string
		h, m, s int
		wantErr bool
	}{
		{"midnight", 0, 0, 0, false},
		{"end of day", 23, 59, 59, false},
		{"hour too large", 24, 0, 0, true},
		{"negative hour", -1, 0, 0, true},
		{"minute too large", 12, 60, 0, true},
		{"second too large", 12, 0, 60, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTime(tt.h, tt.m, tt.s)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTime(%d, %d, %d) error = %v, wantErr %v", tt.h, tt.m, tt.s, err, tt.wantErr)
			}
		})
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("09:30")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.Hour() != 9 || got.Minute() != 30 || got.Second() != 0 {
		t.Errorf("Parse(\"09:30\") = %s", got)
	}

	got, err = Parse("23:59:58")
	if err != nil {
		t.Fatalf("Parse with seconds failed: %v", err)
	}
	if got.Second() != 58 {
		t.Errorf("Expected second 58, got %d", got.Second())
	}

	for _, bad := range []string{"", "9", "25:00", "12:61", "ab:cd"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) should fail", bad)
		}
	}
}

func TestAddMinutesWrapsMidnight(t *testing.T) {
	tests := []struct {
		name  string
		start string
		delta int
		want  string
	}{
		{"forward across midnight", "23:50", 20, "00:10:00"},
		{"backward across midnight", "00:10", -20, "23:50:00"},
		{"no wrap", "12:00", 30, "12:30:00"},
		{"full day is identity", "08:15", 1440, "08:15:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := Parse(tt.start)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got := start.AddMinutes(tt.delta).String(); got != tt.want {
				t.Errorf("%s + %d min = %s, want %s", tt.start, tt.delta, got, tt.want)
			}
		})
	}
}

func TestSubIsSigned(t *testing.T) {
	a, _ := NewTime(10, 0, 0)
	b, _ := NewTime(9, 30, 0)
	if got := a.Sub(b); got != 30 {
		t.Errorf("10:00 - 09:30 = %d, want 30", got)
	}
	if got := b.Sub(a); got != -30 {
		t.Errorf("09:30 - 10:00 = %d, want -30", got)
	}
}

func TestMinutesIgnoresSeconds(t *testing.T) {
	a, _ := NewTime(10, 30, 45)
	if got := a.Minutes(); got != 630 {
		t.Errorf("Minutes() = %d, want 630", got)
	}
}

func TestCompareUsesSeconds(t *testing.T) {
	a, _ := NewTime(10, 0, 0)
	b, _ := NewTime(10, 0, 30)
	if !a.Before(b) {
		t.Error("10:00:00 should be before 10:00:30")
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Error("Compare ordering is wrong")
	}
}

func TestFormat12(t *testing.T) {
	tests := []struct {
		h, m int
		want string
	}{
		{0, 5, "12:05 AM"},
		{9, 30, "9:30 AM"},
		{12, 0, "12:00 PM"},
		{13, 15, "1:15 PM"},
		{23, 59, "11:59 PM"},
	}
	for _, tt := range tests {
		tm, _ := NewTime(tt.h, tt.m, 0)
		if got := tm.Format12(); got != tt.want {
			t.Errorf("Format12(%02d:%02d) = %q, want %q", tt.h, tt.m, got, tt.want)
		}
	}
}
