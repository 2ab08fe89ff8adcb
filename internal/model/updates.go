package model

// Partial-update intents. Nil fields are left untouched; the same struct
// drives both the remote UPDATE and the in-memory merge so the two views
// cannot drift.

// ProfileUpdate mutates onboarding attributes of a UserProfile.
type ProfileUpdate struct {
	Name   *string
	Gender *Gender
	Mazhab *Mazhab
	Age    *int
	City   *string
}

// Apply merges the set fields into p and refreshes the completeness flag.
func (u ProfileUpdate) Apply(p *UserProfile) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.Mazhab != nil {
		p.Mazhab = *u.Mazhab
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.City != nil {
		p.City = *u.City
	}
	if !p.IsProfileComplete && p.Complete() {
		p.IsProfileComplete = true
	}
}

// SholatUpdate mutates an existing SholatRecord.
type SholatUpdate struct {
	Completed *bool
	Rakaat    *int
	Alasan    *string
}

// Apply merges the set fields into r.
func (u SholatUpdate) Apply(r *SholatRecord) {
	if u.Completed != nil {
		r.Completed = *u.Completed
	}
	if u.Rakaat != nil {
		v := *u.Rakaat
		r.Rakaat = &v
	}
	if u.Alasan != nil {
		r.Alasan = *u.Alasan
	}
}

// PuasaUpdate mutates an existing PuasaRecord.
type PuasaUpdate struct {
	Completed  *bool
	SahurTime  *string
	SahurPhoto *string
	Alasan     *string
}

// Apply merges the set fields into r.
func (u PuasaUpdate) Apply(r *PuasaRecord) {
	if u.Completed != nil {
		r.Completed = *u.Completed
	}
	if u.SahurTime != nil {
		r.SahurTime = *u.SahurTime
	}
	if u.SahurPhoto != nil {
		r.SahurPhoto = *u.SahurPhoto
	}
	if u.Alasan != nil {
		r.Alasan = *u.Alasan
	}
}

// SettingsUpdate mutates the device-local ReminderSettings singleton.
type SettingsUpdate struct {
	SholatReminder    *bool
	SholatTimes       []string
	SahurReminder     *bool
	SahurTime         *string
	TilawahReminder   *bool
	TilawahTime       *string
	EmailNotification *bool
	Email             *string
}

// Apply merges the set fields into s.
func (u SettingsUpdate) Apply(s *ReminderSettings) {
	if u.SholatReminder != nil {
		s.SholatReminder = *u.SholatReminder
	}
	if u.SholatTimes != nil {
		s.SholatTimes = append([]string(nil), u.SholatTimes...)
	}
	if u.SahurReminder != nil {
		s.SahurReminder = *u.SahurReminder
	}
	if u.SahurTime != nil {
		s.SahurTime = *u.SahurTime
	}
	if u.TilawahReminder != nil {
		s.TilawahReminder = *u.TilawahReminder
	}
	if u.TilawahTime != nil {
		s.TilawahTime = *u.TilawahTime
	}
	if u.EmailNotification != nil {
		s.EmailNotification = *u.EmailNotification
	}
	if u.Email != nil {
		s.Email = *u.Email
	}
}
