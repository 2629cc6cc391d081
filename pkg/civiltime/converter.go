package civiltime

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// DateFormat формат календарной даты
const DateFormat = "2006-01-02"

var (
	// ErrInvalidTimezone возвращается, когда таймзона не найдена в tzdata
	ErrInvalidTimezone = errors.New("civiltime: invalid timezone")

	// ErrInvalidDate возвращается при некорректной строке даты
	ErrInvalidDate = errors.New("civiltime: invalid date")
)

// Converter конвертирует абсолютные моменты времени (UTC из хранилища)
// в настенное время фиксированной гражданской таймзоны и обратно.
//
// Все сравнения часов работы, тарифных окон и подписи слотов выполняются
// в гражданской таймзоне; все сравнения пересечений броней - по абсолютным
// моментам. Converter - единственная точка перехода между этими двумя
// представлениями.
//
// Таймзона задается явно при создании и никогда не берется из локали процесса.
type Converter struct {
	loc *time.Location
}

// NewConverter создает конвертер для указанной таймзоны (например "Europe/Moscow")
func NewConverter(timezone string) (*Converter, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, timezone, err)
	}
	return &Converter{loc: loc}, nil
}

// Location возвращает таймзону конвертера
func (c *Converter) Location() *time.Location {
	return c.loc
}

// Civil возвращает момент времени в представлении гражданской таймзоны
func (c *Converter) Civil(t time.Time) time.Time {
	return t.In(c.loc)
}

// Weekday возвращает день недели момента в гражданской таймзоне (0=воскресенье .. 6=суббота)
func (c *Converter) Weekday(t time.Time) int {
	return int(t.In(c.loc).Weekday())
}

// TimeOfDay возвращает настенное время момента в гражданской таймзоне
func (c *Converter) TimeOfDay(t time.Time) types.TimeString {
	return types.NewTimeString(t.In(c.loc))
}

// FromCivil возвращает абсолютный момент, соответствующий настенному времени
// timeOfDay в гражданский день даты date
func (c *Converter) FromCivil(date time.Time, timeOfDay types.TimeString) time.Time {
	year, month, day := date.In(c.loc).Date()
	minutes := timeOfDay.Minutes()
	return time.Date(year, month, day, minutes/60, minutes%60, 0, 0, c.loc)
}

// ParseDate парсит строку "YYYY-MM-DD" как полночь гражданского дня
func (c *Converter) ParseDate(s string) (time.Time, error) {
	date, err := time.ParseInLocation(DateFormat, s, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: expected YYYY-MM-DD", ErrInvalidDate, s)
	}
	return date, nil
}

// DayBounds возвращает границы гражданского дня даты date: [полночь, полночь+24ч)
// Используется для выборки броней, релевантных этому дню
func (c *Converter) DayBounds(date time.Time) (time.Time, time.Time) {
	year, month, day := date.In(c.loc).Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, c.loc)
	return start, start.AddDate(0, 0, 1)
}
