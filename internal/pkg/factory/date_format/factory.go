package date_format

import "time"

// DefaultLayout печатает день недели, дату, время и смещение зоны.
const DefaultLayout = "Mon Jan 02 2006 15:04:05 GMT-0700"

type DateFormatter struct {
	layout   string
	location *time.Location
}

// New создает форматтер. Пустой layout заменяется на DefaultLayout, nil location на UTC.
func New(layout string, location *time.Location) *DateFormatter {
	if layout == "" {
		layout = DefaultLayout
	}
	if location == nil {
		location = time.UTC
	}
	return &DateFormatter{
		layout:   layout,
		location: location,
	}
}

func (f *DateFormatter) Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(f.location).Format(f.layout)
}
