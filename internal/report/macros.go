package report

import (
	"math"
	"regexp"
)

// The macronutrient search is confined to the subsection between the
// MACRONUTRIENTI heading and the next heading. When the subsection is
// missing every macronutrient field keeps its default.
var reMacroSection = regexp.MustCompile(`(?s)MACRONUTRIENTI(.*?)VITAMINE`)

// Physiological energy densities, kcal per gram.
const (
	kcalPerGramProtein = 4.0
	kcalPerGramCarbs   = 4.0
	kcalPerGramFats    = 9.0
	kcalPerGramAlcohol = 7.0
)

// The four energy bases default to 0.0 when their label is missing so
// the derived totals and percent shares stay defined; the remaining
// bases default to absent like every other category. The asymmetry is
// deliberate and the percent/ratio math depends on it.
var macroGramFields = []FieldSpec{
	{Key: "Protein_g", Label: "Protidi", Unit: "g"},
	{Key: "Carbs_g", Label: "Glucidi", Unit: "g"},
	{Key: "Fats_g", Label: "Lipidi", Unit: "g"},
	{Key: "Alcohol_g", Label: "Alcool", Unit: "g"},
}

var macroExtraFields = []FieldSpec{
	{Key: "Protein_animal_g", Label: "Proteine animali", Unit: "g"},
	{Key: "Protein_veg_g", Label: "Proteine vegetali", Unit: "g"},
	{Key: "Cholesterol_mg", Label: "Colesterolo", Unit: "mg"},
	{Key: "Sugar_simple_g", Label: "Zuccheri semplici", Unit: "g"},
	{Key: "Sugar_complex_g", Label: "Zuccheri complessi", Unit: "g"},
	{Key: "Fiber_g", Label: "Fibra", Unit: "g"},
	{Key: "Water_g", Label: "Acqua", Unit: "g"},
}

var (
	macroGramPatterns  = compileMacroFields(macroGramFields)
	macroExtraPatterns = compileMacroFields(macroExtraFields)
)

func compileMacroFields(fields []FieldSpec) []compiledField {
	out := make([]compiledField, 0, len(fields))
	for _, f := range fields {
		pattern := regexp.QuoteMeta(f.Label) + " " + regexp.QuoteMeta(f.Unit) + ` ([\d.]+)`
		out = append(out, compiledField{key: f.Key, re: regexp.MustCompile(pattern)})
	}
	return out
}

// ExtractMacronutrients extracts the base grams and computes the
// derived energy values. weightKg is the body weight taken from the
// general section; zero means unknown and suppresses the per-kg value.
func ExtractMacronutrients(rec *Record, numeric string, weightKg float64) {
	grams := make(map[string]float64, len(macroGramPatterns))
	extras := make(map[string]float64, len(macroExtraPatterns))

	var (
		proteinKcal, carbsKcal, fatsKcal, alcoholKcal float64
		proteinPct, carbsPct, fatsPct, alcoholPct     float64
		totalKcal                                     float64
		kcalPerKg                                     *float64
	)

	if m := reMacroSection.FindStringSubmatch(numeric); m != nil {
		section := m[1]
		for _, f := range macroGramPatterns {
			if mm := f.re.FindStringSubmatch(section); mm != nil {
				if v, ok := parseNum(mm[1]); ok {
					grams[f.key] = v
				}
			}
		}
		for _, f := range macroExtraPatterns {
			if mm := f.re.FindStringSubmatch(section); mm != nil {
				if v, ok := parseNum(mm[1]); ok {
					extras[f.key] = v
				}
			}
		}

		proteinKcal = grams["Protein_g"] * kcalPerGramProtein
		carbsKcal = grams["Carbs_g"] * kcalPerGramCarbs
		fatsKcal = grams["Fats_g"] * kcalPerGramFats
		alcoholKcal = grams["Alcohol_g"] * kcalPerGramAlcohol
		totalKcal = proteinKcal + carbsKcal + fatsKcal + alcoholKcal

		if totalKcal > 0 {
			proteinPct = proteinKcal / totalKcal * 100
			carbsPct = carbsKcal / totalKcal * 100
			fatsPct = fatsKcal / totalKcal * 100
			alcoholPct = alcoholKcal / totalKcal * 100
		}
		if totalKcal > 0 && weightKg > 0 {
			v := math.Round(totalKcal/weightKg*100) / 100
			kcalPerKg = &v
		}
	}

	rec.Set("Protein_g", grams["Protein_g"])
	rec.Set("Protein_kcal", proteinKcal)
	rec.Set("Protein_pct", proteinPct)
	rec.Set("Carbs_g", grams["Carbs_g"])
	rec.Set("Carbs_kcal", carbsKcal)
	rec.Set("Carbs_pct", carbsPct)
	rec.Set("Fats_g", grams["Fats_g"])
	rec.Set("Fats_kcal", fatsKcal)
	rec.Set("Fats_pct", fatsPct)
	rec.Set("Alcohol_g", grams["Alcohol_g"])
	rec.Set("Alcohol_kcal", alcoholKcal)
	rec.Set("Alcohol_pct", alcoholPct)
	rec.Set("Total_kcal", totalKcal)
	if kcalPerKg != nil {
		rec.Set("kcal_per_kg", *kcalPerKg)
	} else {
		rec.Set("kcal_per_kg", nil)
	}
	for _, f := range macroExtraFields {
		if v, ok := extras[f.Key]; ok {
			rec.Set(f.Key, v)
		} else {
			rec.Set(f.Key, nil)
		}
	}
}
