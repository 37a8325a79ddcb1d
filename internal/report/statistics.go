package report

import "regexp"

var (
	reDiffTDEE       = regexp.MustCompile(`Differenza dal TDEE:\s*([\d.]+)\s*kcal\s*\(([\d.]+)\s*%\)`)
	reDiffBMR        = regexp.MustCompile(`Differenza dal BMR:\s*([\d.]+)\s*kcal\s*\(([\d.]+)\s*%\)`)
	reProteinActual = regexp.MustCompile(`Proteine per kg di peso attuale:\s*([\d.]+)\s*g`)
	reKcalActual    = regexp.MustCompile(`kcal per kg di peso attuale:\s*([\d.]+)\s*kcal`)
	reProteinIdeal  = regexp.MustCompile(`Proteine per kg di peso ideale BMI:\s*([\d.]+)\s*g`)
	reKcalIdeal     = regexp.MustCompile(`kcal per kg di peso ideale BMI:\s*([\d.]+)\s*kcal`)
)

// ExtractStatistics reads the deviation-from-baseline pairs and the
// per-body-weight ratios. Each kcal/percent pair is one two-group
// pattern: when the phrase is missing both members stay absent.
func ExtractStatistics(rec *Record, numeric string) {
	setFloatPair(rec, "Diff_TDEE_kcal", "Diff_TDEE_pct", reDiffTDEE, numeric)
	setFloatPair(rec, "Diff_BMR_kcal", "Diff_BMR_pct", reDiffBMR, numeric)
	setFloat(rec, "Protein_per_kg_actual_g", reProteinActual, numeric)
	setFloat(rec, "Kcal_per_kg_actual_kcal", reKcalActual, numeric)
	setFloat(rec, "Protein_per_kg_ideal_g", reProteinIdeal, numeric)
	setFloat(rec, "Kcal_per_kg_ideal_kcal", reKcalIdeal, numeric)
}

func setFloatPair(rec *Record, firstKey, secondKey string, re *regexp.Regexp, text string) {
	if m := re.FindStringSubmatch(text); m != nil {
		first, okFirst := parseNum(m[1])
		second, okSecond := parseNum(m[2])
		if okFirst && okSecond {
			rec.Set(firstKey, first)
			rec.Set(secondKey, second)
			return
		}
	}
	rec.Set(firstKey, nil)
	rec.Set(secondKey, nil)
}
