// Package model defines domain entities shared by the store and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// DateLayout is the calendar-date form used by every record ("YYYY-MM-DD").
// Dates are compared by exact string equality, never as ranges.
const DateLayout = "2006-01-02"

// Gender of the account holder.
type Gender string

const (
	GenderLakiLaki  Gender = "Laki-Laki"
	GenderPerempuan Gender = "Perempuan"
)

// Mazhab selects which reference schedule variant applies to the user.
type Mazhab string

const (
	MazhabNU           Mazhab = "NU"
	MazhabMuhammadiyah Mazhab = "Muhammadiyah"
)

// UserProfile is the account record. IsProfileComplete stays false until
// gender, mazhab, age and city have all been set once.
type UserProfile struct {
	ID                uuid.UUID
	Email             string
	Name              string
	Gender            Gender
	Mazhab            Mazhab
	Age               int
	City              string
	IsProfileComplete bool
	CreatedAt         time.Time
}

// Complete reports whether every onboarding attribute has been filled in.
func (p *UserProfile) Complete() bool {
	return p.Gender != "" && p.Mazhab != "" && p.Age > 0 && p.City != ""
}

// SholatType distinguishes obligatory from voluntary prayers.
type SholatType string

const (
	SholatWajib  SholatType = "wajib"
	SholatSunnah SholatType = "sunnah"
)

// Prayer names accepted for SholatRecord.Name.
const (
	SholatSubuh   = "subuh"
	SholatZuhur   = "zuhur"
	SholatAsar    = "asar"
	SholatMagrib  = "magrib"
	SholatIsya    = "isya"
	SholatJumat   = "jumat"
	SholatDhuha   = "dhuha"
	SholatTarawih = "tarawih"
	SholatTahajud = "tahajud"
	SholatWitir   = "witir"
)

// SholatRecord tracks a single prayer on a date. Wajib records are unique
// per (user, date, name); sunnah records may carry a rakaat count instead
// of boolean-only completion.
type SholatRecord struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      string
	Type      SholatType
	Name      string
	Completed bool
	Rakaat    *int
	Alasan    string
}

// PuasaRecord tracks fasting for one date, unique per (user, date).
type PuasaRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Date       string
	Completed  bool
	SahurTime  string
	SahurPhoto string
	Alasan     string
}

// TilawahRecord is an append-only Quran reading log entry.
type TilawahRecord struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Date    string
	Surah   string
	Halaman *int
	Juz     *int
	Ayat    *int
}

// ZakatBentuk is the in-kind-or-cash flag on a zakat payment.
type ZakatBentuk string

const (
	ZakatBeras ZakatBentuk = "beras"
	ZakatUang  ZakatBentuk = "uang"
)

// ZakatRecord is a zakat fitrah payment. TotalNominal is computed once at
// submit time by HitungZakat and stored as-is, never recomputed.
type ZakatRecord struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Date             string
	Time             string
	JumlahOrang      int
	HargaBeras       int64
	TotalNominal     int64
	Bentuk           ZakatBentuk
	MetodePenyaluran string
	BuktiURL         string
	Notes            string
}

// HitungZakat computes the zakat fitrah total: 2.5 kg of rice per person at
// the given price per kg. Integer arithmetic keeps rupiah amounts exact.
func HitungZakat(jumlahOrang int, hargaBeras int64) int64 {
	return int64(jumlahOrang) * hargaBeras * 25 / 10
}

// SedekahRecord is an append-only charity log entry.
type SedekahRecord struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Date     string
	Nominal  int64
	Tujuan   string
	Kategori string
	Notes    string
}

// MoodType is the five-value mood scale of a journal entry.
type MoodType string

const (
	MoodSangatBaik MoodType = "sangat-baik"
	MoodBaik       MoodType = "baik"
	MoodBiasa      MoodType = "biasa"
	MoodKurangBaik MoodType = "kurang-baik"
	MoodBuruk      MoodType = "buruk"
)

// JournalEntry is the daily reflection, unique per (user, date); a later
// write for the same date overwrites the earlier one.
type JournalEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      string
	Mood      MoodType
	Story     string
	Evaluasi  string
	Gratitude string
}

// AgendaCategory classifies an agenda entry.
type AgendaCategory string

const (
	AgendaIbadah AgendaCategory = "ibadah"
	AgendaKajian AgendaCategory = "kajian"
	AgendaSosial AgendaCategory = "sosial"
)

// AgendaEntry is a user-deletable calendar item, no uniqueness constraint.
type AgendaEntry struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Title    string
	Date     string
	Time     string
	Category AgendaCategory
	Location string
	Reminder bool
	Notes    string
}

// ChatRole marks who produced a chat message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is local-only conversation history; it never reaches the
// remote backend and is cleared on demand.
type ChatMessage struct {
	ID        uuid.UUID
	Role      ChatRole
	Content   string
	Timestamp time.Time
}

// ReminderSettings is the device-local singleton of notification toggles.
type ReminderSettings struct {
	SholatReminder    bool
	SholatTimes       []string
	SahurReminder     bool
	SahurTime         string
	TilawahReminder   bool
	TilawahTime       string
	EmailNotification bool
	Email             string
}

// DefaultReminderSettings returns the out-of-the-box toggles.
func DefaultReminderSettings() ReminderSettings {
	return ReminderSettings{
		SholatReminder:  true,
		SholatTimes:     []string{"05:00", "12:00", "15:30", "18:00", "19:30"},
		SahurReminder:   true,
		SahurTime:       "04:00",
		TilawahReminder: false,
		TilawahTime:     "20:00",
	}
}

// JadwalImsakiyah is one row of the date-indexed reference schedule. Two
// parallel tables exist, one per mazhab variant.
type JadwalImsakiyah struct {
	Date   string
	Imsak  string
	Subuh  string
	Zuhur  string
	Asar   string
	Magrib string
	Isya   string
}
