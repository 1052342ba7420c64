package sqlite

import (
	"errors"
	"fmt"
	"time"

	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jhoicas/bodegas-api/internal/domain"
)

// Las fechas se guardan como TEXT RFC3339 en UTC.
const timeLayout = time.RFC3339Nano

var timeLayouts = []string{timeLayout, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida %q", s)
}

// timeCol escanea una columna de fecha obligatoria.
type timeCol struct{ t *time.Time }

func (c timeCol) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*c.t = v
	case string:
		t, err := parseTime(v)
		if err != nil {
			return err
		}
		*c.t = t
	case []byte:
		t, err := parseTime(string(v))
		if err != nil {
			return err
		}
		*c.t = t
	case nil:
		return errors.New("fecha nula en columna obligatoria")
	default:
		return fmt.Errorf("tipo de fecha no soportado %T", src)
	}
	return nil
}

// nullTimeCol escanea una columna de fecha opcional (deleted_at).
type nullTimeCol struct{ t **time.Time }

func (c nullTimeCol) Scan(src any) error {
	if src == nil {
		*c.t = nil
		return nil
	}
	var t time.Time
	if err := (timeCol{t: &t}).Scan(src); err != nil {
		return err
	}
	*c.t = &t
	return nil
}

// wrapErr anota el error con la operación; violaciones de CHECK o FK se reportan como domain.ErrConflict.
func wrapErr(op string, err error) error {
	var se *moderncsqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%s: %w (%s)", op, domain.ErrConflict, se.Error())
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
