package importer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gastromap/gastromap-backend/pkg/model"
)

var dayNames = map[string]int{
	"sunday": 0, "sun": 0, "su": 0, "воскресенье": 0, "вс": 0,
	"monday": 1, "mon": 1, "mo": 1, "понедельник": 1, "пн": 1,
	"tuesday": 2, "tue": 2, "tu": 2, "вторник": 2, "вт": 2,
	"wednesday": 3, "wed": 3, "we": 3, "среда": 3, "ср": 3,
	"thursday": 4, "thu": 4, "th": 4, "четверг": 4, "чт": 4,
	"friday": 5, "fri": 5, "fr": 5, "пятница": 5, "пт": 5,
	"saturday": 6, "sat": 6, "sa": 6, "суббота": 6, "сб": 6,
}

var (
	dayLinePattern   = regexp.MustCompile(`(?i)^([а-яa-z]+)[\s:,]+(.+)$`)
	closedPattern    = regexp.MustCompile(`(?i)closed|закрыто|выходной|off`)
	roundClockExpr   = regexp.MustCompile(`(?i)24\s*/\s*7|24\s*hours|круглосуточно`)
	rangeSeparator   = regexp.MustCompile(`(?i)\s*[–\-—]\s*|\s+to\s+|\s+до\s+`)
	clockPattern     = regexp.MustCompile(`^\d{2}:\d{2}$`)
	simple24Pattern  = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	amPmPattern      = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm|a\.m\.|p\.m\.)`)
	bareHourPattern  = regexp.MustCompile(`^(\d{1,2})$`)
)

type rawHoursEntry struct {
	Day          string          `json:"day"`
	DayOfWeek    json.RawMessage `json:"dayOfWeek"`
	Hours        string          `json:"hours"`
	Time         string          `json:"time"`
	OpeningHours string          `json:"openingHours"`
	OpenTime     string          `json:"openTime"`
	CloseTime    string          `json:"closeTime"`
	IsClosed     bool            `json:"isClosed"`
}

// ParseOpeningHours turns provider opening-hours payloads into working-hours
// rows. Two shapes are handled: string lines ("Monday: 9:00 AM – 10:00 PM")
// and objects ({day: "Monday", hours: "..."}). Unparseable entries are
// dropped; the first entry per weekday wins.
func ParseOpeningHours(raw json.RawMessage) []model.WorkingHours {
	if len(raw) == 0 {
		return nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}

	var (
		result    []model.WorkingHours
		processed = make(map[int]bool)
	)

	for _, entry := range entries {
		var line string
		if err := json.Unmarshal(entry, &line); err == nil {
			if hours, ok := parseHoursLine(line); ok && !processed[hours.DayOfWeek] {
				processed[hours.DayOfWeek] = true
				result = append(result, hours)
			}

			continue
		}

		var obj rawHoursEntry
		if err := json.Unmarshal(entry, &obj); err != nil {
			continue
		}

		if hours, ok := parseHoursObject(obj); ok && !processed[hours.DayOfWeek] {
			processed[hours.DayOfWeek] = true
			result = append(result, hours)
		}
	}

	return result
}

func parseHoursLine(line string) (model.WorkingHours, bool) {
	groups := dayLinePattern.FindStringSubmatch(strings.TrimSpace(line))
	if groups == nil {
		return model.WorkingHours{}, false
	}

	day, found := dayNames[strings.ToLower(groups[1])]
	if !found {
		return model.WorkingHours{}, false
	}

	return buildHours(day, strings.TrimSpace(groups[2]), false)
}

func parseHoursObject(obj rawHoursEntry) (model.WorkingHours, bool) {
	day, found := dayNames[strings.ToLower(obj.Day)]
	if !found && len(obj.DayOfWeek) > 0 {
		var n int
		if err := json.Unmarshal(obj.DayOfWeek, &n); err == nil && n >= 0 && n <= 6 {
			day, found = n, true
		} else {
			var s string
			if err := json.Unmarshal(obj.DayOfWeek, &s); err == nil {
				day, found = dayNames[strings.ToLower(s)]
			}
		}
	}

	if !found {
		return model.WorkingHours{}, false
	}

	timeRange := obj.Hours
	if timeRange == "" {
		timeRange = obj.Time
	}

	if timeRange == "" {
		timeRange = obj.OpeningHours
	}

	if hours, ok := buildHours(day, timeRange, obj.IsClosed); ok {
		return hours, true
	}

	if obj.OpenTime != "" && obj.CloseTime != "" {
		return model.WorkingHours{
			DayOfWeek: day,
			OpensAt:   To24Hour(obj.OpenTime),
			ClosesAt:  To24Hour(obj.CloseTime),
		}, true
	}

	return model.WorkingHours{}, false
}

func buildHours(day int, timeRange string, closed bool) (model.WorkingHours, bool) {
	if closed || closedPattern.MatchString(timeRange) {
		return model.WorkingHours{DayOfWeek: day, OpensAt: "00:00", ClosesAt: "00:00", IsClosed: true}, true
	}

	open, close, ok := parseTimeRange(timeRange)
	if !ok {
		return model.WorkingHours{}, false
	}

	return model.WorkingHours{DayOfWeek: day, OpensAt: open, ClosesAt: close}, true
}

func parseTimeRange(timeRange string) (string, string, bool) {
	if roundClockExpr.MatchString(timeRange) {
		return "00:00", "23:59", true
	}

	parts := rangeSeparator.Split(timeRange, -1)
	if len(parts) < 2 {
		return "", "", false
	}

	open := To24Hour(strings.TrimSpace(parts[0]))
	close := To24Hour(strings.TrimSpace(parts[1]))

	if !clockPattern.MatchString(open) || !clockPattern.MatchString(close) {
		return "", "", false
	}

	return open, close, true
}

// To24Hour converts "9:00", "10:30 PM" or a bare "9" to HH:MM.
func To24Hour(value string) string {
	value = strings.TrimSpace(value)

	if groups := amPmPattern.FindStringSubmatch(value); groups != nil {
		hours, _ := strconv.Atoi(groups[1])
		minutes := groups[2]

		if minutes == "" {
			minutes = "00"
		}

		period := strings.ToUpper(strings.ReplaceAll(groups[3], ".", ""))
		if strings.HasPrefix(period, "P") && hours != 12 {
			hours += 12
		}

		if strings.HasPrefix(period, "A") && hours == 12 {
			hours = 0
		}

		return fmt.Sprintf("%02d:%s", hours, minutes)
	}

	if groups := simple24Pattern.FindStringSubmatch(value); groups != nil {
		hours, _ := strconv.Atoi(groups[1])

		return fmt.Sprintf("%02d:%s", hours, groups[2])
	}

	if groups := bareHourPattern.FindStringSubmatch(value); groups != nil {
		hours, _ := strconv.Atoi(groups[1])

		return fmt.Sprintf("%02d:00", hours)
	}

	return "00:00"
}
