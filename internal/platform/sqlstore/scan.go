package sqlstore

import (
	"fmt"
	"time"
)

// timeLayouts are the textual forms drivers hand back for timestamp columns
// they do not convert themselves, e.g. SQLite RETURNING clauses.
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// Time returns a scan destination that accepts time.Time values as well as
// their textual forms.
func Time(dst *time.Time) any {
	return timeDest{dst: dst}
}

type timeDest struct {
	dst *time.Time
}

func (d timeDest) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d.dst = v.UTC()
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	case nil:
		*d.dst = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into time.Time", src)
	}
}

func (d timeDest) parse(s string) error {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*d.dst = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}
