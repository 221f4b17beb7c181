package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/arnavshah/vacancy-bidding-api/pkg/models"
)

// Result is the outcome of one check. Validators never panic or return
// errors so batch callers can collect every failure.
type Result struct {
	IsValid bool   `json:"isValid"`
	Error   string `json:"error,omitempty"`
}

func ok() Result { return Result{IsValid: true} }

func fail(format string, args ...any) Result {
	return Result{Error: fmt.Sprintf(format, args...)}
}

var validate = validator.New()

// ValidateDate checks an ISO calendar date (YYYY-MM-DD)
func ValidateDate(s string) Result {
	if s == "" {
		return fail("date is required")
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fail("invalid date %q, expected YYYY-MM-DD", s)
	}
	return ok()
}

// ValidateTime checks a 24h clock time (HH:MM or HH:MM:SS)
func ValidateTime(s string) Result {
	if s == "" {
		return fail("time is required")
	}
	for _, layout := range []string{"15:04", "15:04:05"} {
		if _, err := time.Parse(layout, s); err == nil {
			return ok()
		}
	}
	return fail("invalid time %q, expected HH:MM", s)
}

// ValidateNumber parses s and checks it lies within [min, max]
func ValidateNumber(s string, min, max float64) Result {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fail("%q is not a number", s)
	}
	if n < min || n > max {
		return fail("%v is outside %v to %v", n, min, max)
	}
	return ok()
}

// ValidateEmployee checks the roster fields the engine reads
func ValidateEmployee(e models.Employee) Result {
	if err := validate.Struct(e); err != nil {
		return fail("employee %s: %s", e.ID, describe(err))
	}
	return ok()
}

// ValidateVacancy checks the vacancy record and its dates and times
func ValidateVacancy(v models.Vacancy) Result {
	if err := validate.Struct(v); err != nil {
		return fail("vacancy %s: %s", v.ID, describe(err))
	}
	if v.Date == "" && len(v.WorkingDays) == 0 {
		return fail("vacancy %s: date or workingDays is required", v.ID)
	}
	days := v.WorkingDays
	if v.Date != "" {
		days = append([]string{v.Date}, days...)
	}
	for _, d := range days {
		if r := ValidateDate(d); !r.IsValid {
			return fail("vacancy %s: %s", v.ID, r.Error)
		}
	}
	if v.ShiftStart != "" {
		if r := ValidateTime(v.ShiftStart); !r.IsValid {
			return fail("vacancy %s: shiftStart: %s", v.ID, r.Error)
		}
	}
	for day, t := range v.PerDayTimes {
		if t.Start == "" {
			continue
		}
		if r := ValidateTime(t.Start); !r.IsValid {
			return fail("vacancy %s: %s start: %s", v.ID, day, r.Error)
		}
	}
	return ok()
}

// ValidateAll runs every record check and returns the failures only
func ValidateAll(employees []models.Employee, vacancies []models.Vacancy) []string {
	errs := []string{}
	for _, e := range employees {
		if r := ValidateEmployee(e); !r.IsValid {
			errs = append(errs, r.Error)
		}
	}
	for _, v := range vacancies {
		if r := ValidateVacancy(v); !r.IsValid {
			errs = append(errs, r.Error)
		}
	}
	return errs
}

func describe(err error) string {
	verrs, isVerr := err.(validator.ValidationErrors)
	if !isVerr {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, ", ")
}
