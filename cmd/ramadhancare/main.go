// Command ramadhancare is the terminal front-end for the devotional store.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	u "github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/fadhilah/ramadhancare/internal/auth"
	"github.com/fadhilah/ramadhancare/internal/config"
	"github.com/fadhilah/ramadhancare/internal/localstore"
	"github.com/fadhilah/ramadhancare/internal/migrate"
	"github.com/fadhilah/ramadhancare/internal/model"
	"github.com/fadhilah/ramadhancare/internal/repository/postgres"
	"github.com/fadhilah/ramadhancare/internal/store"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func usage() {
	fmt.Fprintf(os.Stderr, `ramadhancare CLI
Usage:
  ramadhancare <cmd> [args]

Commands:
  version
  login      -id <uuid> -email <addr> [-name <name>]
  logout
  status
  profile    [-name s] [-gender s] [-mazhab s] [-age n] [-city s]
  sholat     -name <subuh..witir> [-type wajib|sunnah] [-done] [-rakaat n] [-alasan s] [-date d]
  puasa      [-done] [-sahur-time hh:mm] [-sahur-photo url] [-alasan s] [-date d]
  tilawah    [-surah s] [-halaman n] [-juz n] [-ayat n] [-date d]
  zakat      -orang <n> -harga <rp> [-bentuk beras|uang] [-metode s] [-bukti url] [-notes s] [-date d]
  sedekah    -nominal <rp> -tujuan <s> [-kategori s] [-notes s] [-date d]
  journal    -mood <m> [-story s] [-evaluasi s] [-gratitude s] [-date d]
  agenda     -title <s> [-time hh:mm] [-category s] [-location s] [-reminder] [-notes s] [-date d]
  agenda-rm  -id <uuid>
  today
  totals
  chat       -say <text> | -clear
  settings   [-sholat=bool] [-sahur=bool] [-tilawah=bool] [-email addr]
`)
	os.Exit(2)
}

// main wires config, migrations, the backend pool, the local store and the
// domain store, then dispatches subcommands.
func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
	}
	cmd := flag.Arg(0)
	args := flag.Args()[1:]

	if cmd == "version" {
		fmt.Printf("ramadhancare %s (%s)\n", version, buildDate)
		return
	}

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := migrate.Up(ctx, cfg.DatabaseURI); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	db, err := postgres.New(ctx, cfg.DatabaseURI)
	if err != nil {
		logger.Fatal("connect backend", zap.Error(err))
	}
	defer db.Close()

	_ = os.MkdirAll(filepath.Dir(cfg.LocalDBPath), 0o700)
	local, err := localstore.Open(cfg.LocalDBPath)
	if err != nil {
		logger.Fatal("open local store", zap.Error(err))
	}
	defer local.Close()

	sessions, err := auth.NewManager(local, []byte(cfg.SessionKey), 30*24*time.Hour)
	if err != nil {
		logger.Fatal("session manager", zap.Error(err))
	}
	defer sessions.Close()

	st := store.New(store.Repos{
		Profiles: postgres.NewProfileRepo(db),
		Sholat:   postgres.NewSholatRepo(db),
		Puasa:    postgres.NewPuasaRepo(db),
		Tilawah:  postgres.NewTilawahRepo(db),
		Zakat:    postgres.NewZakatRepo(db),
		Sedekah:  postgres.NewSedekahRepo(db),
		Journal:  postgres.NewJournalRepo(db),
		Agenda:   postgres.NewAgendaRepo(db),
		Jadwal:   postgres.NewJadwalRepo(db),
	}, local, sessions, store.Options{Location: cfg.Timezone, Logger: logger})
	defer st.Close()

	if err := st.Init(ctx); err != nil {
		logger.Warn("init", zap.Error(err))
	}

	switch cmd {
	case "login":
		cmdLogin(ctx, sessions, st, args)
	case "logout":
		if err := sessions.SignOut(ctx); err != nil {
			fail(err)
		}
		fmt.Println("ok")
	case "status":
		printJSON(map[string]any{
			"authenticated": st.IsAuthenticated(),
			"user":          st.User(),
			"today":         st.Today(),
		})
	case "profile":
		cmdProfile(ctx, st, args)
	case "sholat":
		cmdSholat(ctx, st, args)
	case "puasa":
		cmdPuasa(ctx, st, args)
	case "tilawah":
		cmdTilawah(ctx, st, args)
	case "zakat":
		cmdZakat(ctx, st, args)
	case "sedekah":
		cmdSedekah(ctx, st, args)
	case "journal":
		cmdJournal(ctx, st, args)
	case "agenda":
		cmdAgenda(ctx, st, args)
	case "agenda-rm":
		cmdAgendaRm(ctx, st, args)
	case "today":
		printJSON(map[string]any{
			"sholat":  st.TodaySholatRecords(),
			"puasa":   st.TodayPuasa(),
			"tilawah": st.TodayTilawah(),
			"journal": st.JournalByDate(st.Today()),
			"jadwal":  st.TodaySchedule(),
		})
	case "totals":
		printJSON(map[string]any{
			"zakat":   st.TotalZakat(),
			"sedekah": st.TotalSedekah(),
		})
	case "chat":
		cmdChat(st, args)
	case "settings":
		cmdSettings(st, args)
	default:
		usage()
	}
}

// cmdLogin activates a session for an externally established identity.
func cmdLogin(ctx context.Context, sessions *auth.Manager, st *store.Store, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	id := fs.String("id", "", "user id (uuid, optional)")
	email := fs.String("email", "", "email")
	name := fs.String("name", "", "display name")
	_ = fs.Parse(args)
	if *email == "" {
		fmt.Fprintln(os.Stderr, "need -email")
		os.Exit(1)
	}
	uid, err := u.FromString(*id)
	if *id == "" || err != nil {
		uid, _ = u.NewV4()
	}
	if err := sessions.SignIn(ctx, auth.Session{UserID: uid, Email: *email, Name: *name}); err != nil {
		fail(err)
	}
	// The event loop refreshes asynchronously; a direct refresh gives the
	// CLI its data before the process exits.
	if err := st.Refresh(ctx); err != nil {
		fail(err)
	}
	printJSON(st.User())
}

func cmdProfile(ctx context.Context, st *store.Store, args []string) {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	gender := fs.String("gender", "", "Laki-Laki|Perempuan")
	mazhab := fs.String("mazhab", "", "NU|Muhammadiyah")
	age := fs.Int("age", 0, "age")
	city := fs.String("city", "", "city")
	_ = fs.Parse(args)

	var upd model.ProfileUpdate
	if *name != "" {
		upd.Name = name
	}
	if *gender != "" {
		upd.Gender = (*model.Gender)(gender)
	}
	if *mazhab != "" {
		upd.Mazhab = (*model.Mazhab)(mazhab)
	}
	if *age > 0 {
		upd.Age = age
	}
	if *city != "" {
		upd.City = city
	}
	if err := st.UpdateProfile(ctx, upd); err != nil {
		fail(err)
	}
	printJSON(st.User())
}

func cmdSholat(ctx context.Context, st *store.Store, args []string) {
	fs := flag.NewFlagSet("sholat", flag.ExitOnError)
	typ := fs.String("type", "wajib", "wajib|sunnah")
	name := fs.String("name", "", "prayer name")
	done := fs.Bool("done", true, "completed")
	rakaat := fs.Int("rakaat", 0, "rakaat count (sunnah)")
	alasan := fs.String("alasan", "", "absence reason")
	date := fs.String("date", "", "date (YYYY-MM-DD, default today)")
	_ = fs.Parse(args)
	if *name == "" {
		fmt.Fprintln(os.Stderr, "need -name")
		os.Exit(1)
	}

	rec := model.SholatRecord{
		Date:      orToday(st, *date),
		Type:      model.SholatType(*typ),
		Name:      *name,
		Completed: *done,
		Alasan:    *alasan,
	}
	if *rakaat > 0 {
		rec.Rakaat = rakaat
	}
	out, err := st.AddSholatRecord(ctx, rec)
	if err != nil {
		fail(err)
	}
	printJSON(out)
}

func cmdPuasa(ctx context.Context, st *store.Store, args []string) {
	fs := flag.NewFlagSet("puasa", flag.ExitOnError)
	done := fs.Bool("done", true, "completed")
	sahurTime := fs.String("sahur-time", "", "sahur time (hh:mm)")
	sahurPhoto := fs.String("sahur-photo", "", "sahur photo url")
	alasan := fs.String("alasan", "", "absence reason")
	date := fs.String("date", "", "date (default today)")
	_ = fs.Parse(args)

	out, err := st.AddPuasaRecord(ctx, model.PuasaRecord{
		Date:       orToday(st, *date),
		Completed:  *done,
		SahurTime:  *sahurTime,
		SahurPhoto: *sahurPhoto,
		Alasan:     *alasan,
	})
	if err != nil {
		fail(err)
	}
	printJSON(out)
}

func cmdTilawah(ctx context.Context, st *store.Store, args []string) {
	fs := flag.NewFlagSet("tilawah", flag.ExitOnError)
	surah := fs.String("surah", "", "surah name")
	halaman := fs.Int("halaman", 0, "page")
	juz := fs.Int("juz", 0, "juz")
	ayat := fs.Int("ayat", 0, "verse")
	date := fs.String("date", "", "date (default today)")
	_ = fs.Parse(args)

	rec := model.TilawahRecord{Date: orToday(st, *date), Surah: *surah}
	if *halaman > 0 {
		rec.Halaman = halaman
	}
	if *juz > 0 {
		rec.Juz = juz
	}
	if *ayat > 0 {
		rec.Ayat = ayat
	}
	out, err := st.AddTilawahRecord(ctx, rec)
	if err != nil {
		fail(err)
	}
	printJSON(out)
}

// cmdZakat is the calculator path: the total is computed here at submit
// time and stored, never recomputed later.
func cmdZakat(ctx context.Context, st *store.Store, args []string) {
	fs := flag.NewFlagSet("zakat", flag.ExitOnError)
	orang := fs.Int("orang", 0, "household size")
	harga := fs.Int64("harga", 0, "rice price per kg (rupiah)")
	bentuk := fs.String("bentuk", "uang", "beras|uang")
	metode := fs.String("metode", "", "distribution method")
	bukti := fs.String("bukti", "", "proof url")
	notes := fs.String("notes", "", "notes")
	date := fs.String("date", "", "date (default today)")
	_ = fs.Parse(args)
	if *orang <= 0 || *harga <= 0 {
		fmt.Fprintln(os.Stderr, "need positive -orang and -harga")
		os.Exit(1)
	}

	out, err := st.AddZakatRecord(ctx, model.ZakatRecord{
		Date:             orToday(st, *date),
		Time:             time.Now().Format("15:04"),
		JumlahOrang:      *orang,
		HargaBeras:       *harga,
		TotalNominal:     model.HitungZakat(*orang, *harga),
		Bentuk:           model.ZakatBentuk(*bentuk),
		MetodePenyaluran: *metode,
		BuktiURL:         *bukti,
		Notes:            *notes,
	})
	if err != nil {
		fail(err)
	}
	printJSON(out)
}

func cmdSedekah(ctx context.Context, st *store.Store, args []string) {
	fs := flag.NewFlagSet("sedekah", flag.ExitOnError)
	nominal := fs.Int64("nominal", 0, "amount (rupiah)")
	tujuan := fs.String("tujuan", "", "beneficiary")
	kategori := fs.String("kategori", "", "category")
	notes := fs.String("notes", "", "notes")
	date := fs.String("date", "", "date (default today)")
	_ = fs.Parse(args)
	if *nominal <= 0 || *tujuan == "" {
		fmt.Fprintln(os.Stderr, "need -nominal and -tujuan")
		os.Exit(1)
	}

	out, err := st.AddSedekahRecord(ctx, model.SedekahRecord{
		Date:     orToday(st, *date),
		Nominal:  *nominal,
		Tujuan:   *tujuan,
		Kategori: *kategori,
		Notes:    *notes,
	})
	if err != nil {
		fail(err)
	}
	printJSON(out)
}

func cmdJournal(ctx context.Context, st *store.Store, args []string) {
	fs := flag.NewFlagSet("journal", flag.ExitOnError)
	mood := fs.String("mood", "", "sangat-baik|baik|biasa|kurang-baik|buruk")
	story := fs.String("story", "", "narrative")
	evaluasi := fs.String("evaluasi", "", "self evaluation")
	gratitude := fs.String("gratitude", "", "gratitude")
	date := fs.String("date", "", "date (default today)")
	_ = fs.Parse(args)
	if *mood == "" {
		fmt.Fprintln(os.Stderr, "need -mood")
		os.Exit(1)
	}

	out, err := st.AddJournalEntry(ctx, model.JournalEntry{
		Date:      orToday(st, *date),
		Mood:      model.MoodType(*mood),
		Story:     *story,
		Evaluasi:  *evaluasi,
		Gratitude: *gratitude,
	})
	if err != nil {
		fail(err)
	}
	printJSON(out)
}

func cmdAgenda(ctx context.Context, st *store.Store, args []string) {
	fs := flag.NewFlagSet("agenda", flag.ExitOnError)
	title := fs.String("title", "", "title")
	tm := fs.String("time", "", "time (hh:mm)")
	category := fs.String("category", "ibadah", "ibadah|kajian|sosial")
	location := fs.String("location", "", "location")
	reminder := fs.Bool("reminder", false, "reminder")
	notes := fs.String("notes", "", "notes")
	date := fs.String("date", "", "date (default today)")
	_ = fs.Parse(args)
	if *title == "" {
		fmt.Fprintln(os.Stderr, "need -title")
		os.Exit(1)
	}

	out, err := st.AddAgendaEntry(ctx, model.AgendaEntry{
		Title:    *title,
		Date:     orToday(st, *date),
		Time:     *tm,
		Category: model.AgendaCategory(*category),
		Location: *location,
		Reminder: *reminder,
		Notes:    *notes,
	})
	if err != nil {
		fail(err)
	}
	printJSON(out)
}

func cmdAgendaRm(ctx context.Context, st *store.Store, args []string) {
	fs := flag.NewFlagSet("agenda-rm", flag.ExitOnError)
	id := fs.String("id", "", "entry id (uuid)")
	_ = fs.Parse(args)
	uid, err := u.FromString(*id)
	if err != nil {
		fmt.Fprintln(os.Stderr, "need -id (uuid)")
		os.Exit(1)
	}
	if err := st.DeleteAgendaEntry(ctx, uid); err != nil {
		fail(err)
	}
	fmt.Println("ok")
}

func cmdChat(st *store.Store, args []string) {
	fs := flag.NewFlagSet("chat", flag.ExitOnError)
	say := fs.String("say", "", "message text")
	clear := fs.Bool("clear", false, "clear history")
	_ = fs.Parse(args)

	switch {
	case *clear:
		if err := st.ClearChatHistory(); err != nil {
			fail(err)
		}
		fmt.Println("ok")
	case *say != "":
		if _, err := st.AddChatMessage(model.RoleUser, *say); err != nil {
			fail(err)
		}
		printJSON(st.ChatHistory())
	default:
		printJSON(st.ChatHistory())
	}
}

func cmdSettings(st *store.Store, args []string) {
	fs := flag.NewFlagSet("settings", flag.ExitOnError)
	sholat := fs.Bool("sholat", true, "sholat reminder")
	sahur := fs.Bool("sahur", true, "sahur reminder")
	tilawah := fs.Bool("tilawah", false, "tilawah reminder")
	email := fs.String("email", "", "notification email")
	_ = fs.Parse(args)

	var upd model.SettingsUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sholat":
			upd.SholatReminder = sholat
		case "sahur":
			upd.SahurReminder = sahur
		case "tilawah":
			upd.TilawahReminder = tilawah
		case "email":
			upd.Email = email
			on := *email != ""
			upd.EmailNotification = &on
		}
	})
	if err := st.UpdateReminderSettings(upd); err != nil {
		fail(err)
	}
	printJSON(st.ReminderSettings())
}

// ---- helpers ----

func orToday(st *store.Store, date string) string {
	if date == "" {
		return st.Today()
	}
	return date
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
