package sqlite

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/FocuswithJustin/strfunc/core/strfunc"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDriverInfo(t *testing.T) {
	info := GetInfo()

	if info.DriverName == "" {
		t.Error("DriverName should not be empty")
	}
	if info.DriverType != "purego" && info.DriverType != "cgo" {
		t.Errorf("DriverType = %q, want 'purego' or 'cgo'", info.DriverType)
	}
	if info.IsCGO != (info.DriverType == "cgo") {
		t.Errorf("IsCGO = %v inconsistent with DriverType %q", info.IsCGO, info.DriverType)
	}

	want := map[string]bool{
		"ASCII": false, "CHAR": false, "LCASE": false, "UCASE": false,
		"LENGTH": false, "RTRIM": false, "LTRIM": false, "SPACE": false,
		"BIT_LENGTH": false, "CHAR_LENGTH": false, "CHARACTER_LENGTH": false,
	}
	for _, name := range info.Functions {
		if _, ok := want[name]; !ok {
			t.Errorf("unexpected function %q", name)
		}
		want[name] = true
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("function %q not bound", name)
		}
	}
}

func TestDriverTypeConsistency(t *testing.T) {
	switch DriverType() {
	case "purego":
		if DriverName() != "sqlite" || IsCGO() {
			t.Errorf("purego driver: name=%q cgo=%v", DriverName(), IsCGO())
		}
	case "cgo":
		if DriverName() != "sqlite3_strfunc" || !IsCGO() {
			t.Errorf("cgo driver: name=%q cgo=%v", DriverName(), IsCGO())
		}
	default:
		t.Errorf("unknown driver type %q", DriverType())
	}
}

func TestTextFunctions(t *testing.T) {
	db := openTestDB(t)

	tests := []struct {
		query string
		want  string
	}{
		{"SELECT UCASE('straße')", "STRASSE"},
		{"SELECT LCASE('FOO bar')", "foo bar"},
		{"SELECT RTRIM('  foo bar   ')", "  foo bar"},
		{"SELECT LTRIM('   foo bar  ')", "foo bar  "},
		{"SELECT SPACE(3)", "   "},
		{"SELECT CHAR(65)", "A"},
		{"SELECT CHAR(233)", "é"},
		{"SELECT ucase(lcase('MiXeD'))", "MIXED"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got sql.NullString
			if err := db.QueryRow(tt.query).Scan(&got); err != nil {
				t.Fatalf("query failed: %v", err)
			}
			if !got.Valid || got.String != tt.want {
				t.Errorf("got %q (valid=%v), want %q", got.String, got.Valid, tt.want)
			}
		})
	}
}

func TestNumericFunctions(t *testing.T) {
	db := openTestDB(t)

	tests := []struct {
		query string
		want  int64
	}{
		{"SELECT ASCII('A')", 65},
		{"SELECT ASCII('€uro')", 0x20AC},
		{"SELECT LENGTH('   foo bar   ')", 10},
		{"SELECT CHAR_LENGTH('   foo bar   ')", 13},
		{"SELECT CHARACTER_LENGTH('€uro')", 4},
		{"SELECT BIT_LENGTH('A')", 8},
		{"SELECT BIT_LENGTH('€')", 24},
		{"SELECT LENGTH('')", 0},
		{"SELECT LENGTH('ab' || CHAR(160))", 3},
		{"SELECT LENGTH('ab' || CHAR(12))", 2},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got sql.NullInt64
			if err := db.QueryRow(tt.query).Scan(&got); err != nil {
				t.Fatalf("query failed: %v", err)
			}
			if !got.Valid || got.Int64 != tt.want {
				t.Errorf("got %d (valid=%v), want %d", got.Int64, got.Valid, tt.want)
			}
		})
	}
}

func TestNullResults(t *testing.T) {
	db := openTestDB(t)

	queries := []string{
		"SELECT UCASE(NULL)",
		"SELECT LENGTH(NULL)",
		"SELECT SPACE(NULL)",
		"SELECT CHAR(256)",
		"SELECT CHAR(-1)",
		"SELECT SPACE(-1)",
		"SELECT SPACE(2147483648)",
		"SELECT SPACE(4611686018427387904)",
		"SELECT SPACE(9223372036854775807)",
		"SELECT ASCII('')",
	}

	for _, query := range queries {
		t.Run(query, func(t *testing.T) {
			var got sql.NullString
			if err := db.QueryRow(query).Scan(&got); err != nil {
				t.Fatalf("query failed: %v", err)
			}
			if got.Valid {
				t.Errorf("got %q, want NULL", got.String)
			}
		})
	}
}

func TestCategoryMismatch(t *testing.T) {
	db := openTestDB(t)

	tests := []struct {
		query   string
		wantErr string
	}{
		{"SELECT CHAR('A')", "A number is required; received [A]"},
		{"SELECT SPACE('abc')", "A number is required; received [abc]"},
		{"SELECT UCASE(123)", "A string/char is required; received [123]"},
		{"SELECT LENGTH(1.5)", "A string/char is required; received [1.5]"},
		{"SELECT LTRIM(x'cafe')", "A string/char is required"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got sql.NullString
			err := db.QueryRow(tt.query).Scan(&got)
			if err == nil {
				t.Fatalf("query succeeded with %q, want error", got.String)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestTableColumn(t *testing.T) {
	db := openTestDB(t)

	if _, err := db.Exec("CREATE TABLE words (w TEXT)"); err != nil {
		t.Fatalf("create table: %v", err)
	}
	for _, w := range []string{"alpha  ", "Beta", "straße"} {
		if _, err := db.Exec("INSERT INTO words (w) VALUES (?)", w); err != nil {
			t.Fatalf("insert %q: %v", w, err)
		}
	}
	if _, err := db.Exec("INSERT INTO words (w) VALUES (NULL)"); err != nil {
		t.Fatalf("insert NULL: %v", err)
	}

	rows, err := db.Query("SELECT UCASE(w), LENGTH(w) FROM words ORDER BY rowid")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	defer rows.Close()

	type row struct {
		upper  sql.NullString
		length sql.NullInt64
	}
	var got []row
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.upper, &r.length); err != nil {
			t.Fatalf("scan: %v", err)
		}
		got = append(got, r)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}

	want := []struct {
		upper  string
		length int64
		null   bool
	}{
		{"ALPHA  ", 5, false},
		{"BETA", 4, false},
		{"STRASSE", 6, false},
		{"", 0, true},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i, w := range want {
		if w.null {
			if got[i].upper.Valid || got[i].length.Valid {
				t.Errorf("row %d: want NULLs, got %+v", i, got[i])
			}
			continue
		}
		if got[i].upper.String != w.upper || got[i].length.Int64 != w.length {
			t.Errorf("row %d = (%q, %d), want (%q, %d)", i, got[i].upper.String, got[i].length.Int64, w.upper, w.length)
		}
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		t.Fatalf("Ping() failed: %v", err)
	}

	var got sql.NullString
	if err := db.QueryRow("SELECT LCASE('FILE')").Scan(&got); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if got.String != "file" {
		t.Errorf("got %q, want 'file'", got.String)
	}
}

func TestMustOpen(t *testing.T) {
	db := MustOpen(":memory:")
	defer db.Close()

	if err := db.Ping(); err != nil {
		t.Fatalf("Ping() failed: %v", err)
	}
}

func TestFromDriver(t *testing.T) {
	tests := []struct {
		in   any
		want strfunc.ValueType
	}{
		{nil, strfunc.TypeNull},
		{int64(7), strfunc.TypeInteger},
		{1.5, strfunc.TypeFloat},
		{"x", strfunc.TypeText},
		{[]byte{1}, strfunc.TypeBlob},
		{true, strfunc.TypeInteger},
	}
	for _, tt := range tests {
		if got := fromDriver(tt.in).Type(); got != tt.want {
			t.Errorf("fromDriver(%v) type = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestToDriver(t *testing.T) {
	if got := toDriver(strfunc.NewNullValue()); got != nil {
		t.Errorf("toDriver(null) = %v, want nil", got)
	}
	if got := toDriver(strfunc.NewIntValue(3)); got != int64(3) {
		t.Errorf("toDriver(3) = %v", got)
	}
	if got := toDriver(strfunc.NewCharValue('A')); got != "A" {
		t.Errorf("toDriver('A') = %v", got)
	}
}
