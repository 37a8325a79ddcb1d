package report

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	rePatientName = regexp.MustCompile(`Report del Calcolo intake alimentare\s+([A-Za-z\s]+?)\s+Visita del`)
	reVisitDate   = regexp.MustCompile(`Visita del:\s*(\d{1,2}/\d{1,2}/\d{4})`)
	reGender      = regexp.MustCompile(`(?i)Sesso:\s*(Femmina|Maschio)`)
	reAge         = regexp.MustCompile(`Et√†:\s*(\d+)`)
	reHeight      = regexp.MustCompile(`Altezza:\s*cm\s*(\d+)`)
	reWeight      = regexp.MustCompile(`Peso:\s*kg\s*([\d.]+)`)
	reBMI         = regexp.MustCompile(`BMI \(Body Mass Index\)\s*([\d.]+)`)
	reBSA         = regexp.MustCompile(`BSA \(Body Surface Area\)\s*m¬≤\s*([\d.]+)`)
	reBMR         = regexp.MustCompile(`BMR \(Basal Metabolic Rate\)\s*kcal\s*([\d.]+)`)
	reTDEE        = regexp.MustCompile(`TDEE \(Total Daily Energy Expenditure\):\s*kcal\s*([\d.]+)`)
)

// ExtractGeneralInfo reads patient identity from the display text (the
// numeric variant would corrupt names and dates) and the physiological
// numbers from the numeric text. Every field is independently optional.
func ExtractGeneralInfo(rec *Record, display, numeric string) {
	setText(rec, "Patient_Name", rePatientName, display)
	setText(rec, "Visit_Date", reVisitDate, display)
	setGender(rec, display)
	setInt(rec, "Age_years", reAge, numeric)
	setInt(rec, "Height_cm", reHeight, numeric)
	setFloat(rec, "Weight_kg", reWeight, numeric)
	setFloat(rec, "BMI", reBMI, numeric)
	setFloat(rec, "BSA_m2", reBSA, numeric)
	setFloat(rec, "BMR_kcal", reBMR, numeric)
	setFloat(rec, "TDEE_kcal", reTDEE, numeric)
}

func setGender(rec *Record, display string) {
	m := reGender.FindStringSubmatch(display)
	if m == nil {
		rec.Set("Gender", nil)
		return
	}
	switch {
	case strings.EqualFold(m[1], "Femmina"):
		rec.Set("Gender", 0)
	case strings.EqualFold(m[1], "Maschio"):
		rec.Set("Gender", 1)
	default:
		rec.Set("Gender", nil)
	}
}

func setText(rec *Record, key string, re *regexp.Regexp, text string) {
	if m := re.FindStringSubmatch(text); m != nil {
		rec.Set(key, strings.TrimSpace(m[1]))
		return
	}
	rec.Set(key, nil)
}

func setInt(rec *Record, key string, re *regexp.Regexp, text string) {
	if m := re.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			rec.Set(key, v)
			return
		}
	}
	rec.Set(key, nil)
}

func setFloat(rec *Record, key string, re *regexp.Regexp, text string) {
	if m := re.FindStringSubmatch(text); m != nil {
		if v, ok := parseNum(m[1]); ok {
			rec.Set(key, v)
			return
		}
	}
	rec.Set(key, nil)
}
