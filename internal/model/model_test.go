package model

import "testing"

func TestHitungZakat(t *testing.T) {
	tests := []struct {
		name  string
		orang int
		harga int64
		want  int64
	}{
		{"keluarga empat orang", 4, 15000, 150000},
		{"satu orang", 1, 15000, 37500},
		{"harga ganjil", 3, 13333, 99997},
		{"nol orang", 0, 15000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitungZakat(tt.orang, tt.harga); got != tt.want {
				t.Errorf("HitungZakat(%d, %d) = %d, want %d", tt.orang, tt.harga, got, tt.want)
			}
		})
	}
}

func TestHitungZakat_ScalesLinearly(t *testing.T) {
	// Total for n people is always n times the single-person amount.
	const harga = 18000
	per := HitungZakat(1, harga)
	for n := 1; n <= 50; n++ {
		if got := HitungZakat(n, harga); got != int64(n)*per {
			t.Fatalf("HitungZakat(%d, %d) = %d, want %d", n, harga, got, int64(n)*per)
		}
	}
}

func TestUserProfile_Complete(t *testing.T) {
	full := UserProfile{Gender: GenderPerempuan, Mazhab: MazhabNU, Age: 30, City: "Bandung"}
	if !full.Complete() {
		t.Fatalf("fully filled profile must be complete")
	}
	for name, p := range map[string]UserProfile{
		"no gender": {Mazhab: MazhabNU, Age: 30, City: "Bandung"},
		"no mazhab": {Gender: GenderPerempuan, Age: 30, City: "Bandung"},
		"no age":    {Gender: GenderPerempuan, Mazhab: MazhabNU, City: "Bandung"},
		"no city":   {Gender: GenderPerempuan, Mazhab: MazhabNU, Age: 30},
	} {
		if p.Complete() {
			t.Errorf("%s: profile should not be complete", name)
		}
	}
}

func TestProfileUpdate_LatchesCompleteness(t *testing.T) {
	p := UserProfile{Email: "umi@example.com"}
	age := 30
	city := "Bandung"
	g := GenderPerempuan
	m := MazhabNU
	ProfileUpdate{Gender: &g, Mazhab: &m, Age: &age, City: &city}.Apply(&p)
	if !p.IsProfileComplete {
		t.Fatalf("completing every attribute must set the flag")
	}

	// The flag stays set even if an attribute is later blanked out.
	empty := ""
	ProfileUpdate{City: &empty}.Apply(&p)
	if !p.IsProfileComplete {
		t.Fatalf("completeness flag must latch")
	}
}

func TestSholatUpdate_AppliesOnlySetFields(t *testing.T) {
	rk := 2
	r := SholatRecord{Name: SholatSubuh, Type: SholatWajib, Completed: false, Rakaat: &rk, Alasan: "sakit"}
	done := true
	SholatUpdate{Completed: &done}.Apply(&r)
	if !r.Completed {
		t.Fatalf("Completed not applied")
	}
	if r.Rakaat == nil || *r.Rakaat != 2 || r.Alasan != "sakit" {
		t.Fatalf("unset fields must not change: %+v", r)
	}
}

func TestSettingsUpdate_Apply(t *testing.T) {
	s := DefaultReminderSettings()
	if s.SahurTime != "04:00" {
		t.Fatalf("default sahur time want 04:00, got %q", s.SahurTime)
	}
	on := true
	tt := "20:30"
	SettingsUpdate{TilawahReminder: &on, TilawahTime: &tt}.Apply(&s)
	if !s.TilawahReminder || s.TilawahTime != "20:30" {
		t.Fatalf("tilawah settings not applied: %+v", s)
	}
	if s.SahurTime != "04:00" {
		t.Fatalf("untouched settings must survive: %+v", s)
	}
}

func TestDefaultReminderSettings_IndependentCopies(t *testing.T) {
	a := DefaultReminderSettings()
	b := DefaultReminderSettings()
	a.SholatTimes[0] = "05:15"
	if b.SholatTimes[0] == "05:15" {
		t.Fatalf("defaults must not share the prayer-time slice")
	}
}
