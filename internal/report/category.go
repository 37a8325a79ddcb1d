package report

import (
	"regexp"
	"strconv"
)

type compiledField struct {
	key string
	re  *regexp.Regexp
}

func (c Category) compile() []compiledField {
	sep := `\s+`
	if c.Tight {
		sep = `\s*`
	}
	out := make([]compiledField, 0, len(c.Fields))
	for _, f := range c.Fields {
		label := regexp.QuoteMeta(f.Label)
		if c.Anchored {
			label = `\b` + label + `\b`
		}
		pattern := label
		if f.Unit != "" {
			pattern += sep + regexp.QuoteMeta(f.Unit)
		}
		pattern += sep + `([\d.]+)`
		out = append(out, compiledField{key: f.Key, re: regexp.MustCompile(pattern)})
	}
	return out
}

var (
	mineralFields   = Minerals.compile()
	vitaminFields   = Vitamins.compile()
	aminoAcidFields = AminoAcids.compile()
	fattyAcidFields = FattyAcids.compile()
	ratioFields     = Ratios.compile()
	inqFields       = INQ.compile()
)

// extractCategory stores the first numeric match per field, or marks the
// field absent. Fields are independent: one miss never affects another.
func extractCategory(rec *Record, numeric string, fields []compiledField) {
	for _, f := range fields {
		if m := f.re.FindStringSubmatch(numeric); m != nil {
			if v, ok := parseNum(m[1]); ok {
				rec.Set(f.key, v)
				continue
			}
		}
		rec.Set(f.key, nil)
	}
}

func ExtractMinerals(rec *Record, numeric string) {
	extractCategory(rec, numeric, mineralFields)
}

func ExtractVitamins(rec *Record, numeric string) {
	extractCategory(rec, numeric, vitaminFields)
}

func ExtractAminoAcids(rec *Record, numeric string) {
	extractCategory(rec, numeric, aminoAcidFields)
}

func ExtractFattyAcids(rec *Record, numeric string) {
	extractCategory(rec, numeric, fattyAcidFields)
}

func ExtractRatios(rec *Record, numeric string) {
	extractCategory(rec, numeric, ratioFields)
}

func ExtractINQ(rec *Record, numeric string) {
	extractCategory(rec, numeric, inqFields)
}

// parseNum converts a matched digit/decimal token. A token the pattern
// admits but ParseFloat rejects (e.g. "1.2.3") counts as a miss.
func parseNum(token string) (float64, bool) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
