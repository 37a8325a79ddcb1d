package report

// Record is the flat set of fields extracted from one document. Keys
// keep insertion order so every record built by Extract lists the full
// field universe in the same sequence. Values are float64, int or
// string; nil marks a field whose label was not found.
type Record struct {
	keys   []string
	values map[string]any
}

func NewRecord() *Record {
	return &Record{values: map[string]any{}}
}

func (r *Record) Set(key string, value any) {
	if _, seen := r.values[key]; !seen {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

func (r *Record) Keys() []string {
	return r.keys
}

// Get returns the extracted value and true, or (nil, false) when the
// field is absent or the key was never populated.
func (r *Record) Get(key string) (any, bool) {
	v, seen := r.values[key]
	if !seen || v == nil {
		return nil, false
	}
	return v, true
}

func (r *Record) Float(key string) (float64, bool) {
	v, ok := r.Get(key)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

func (r *Record) Int(key string) (int, bool) {
	v, ok := r.Get(key)
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}

func (r *Record) Text(key string) (string, bool) {
	v, ok := r.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Extract runs the full pipeline on one rendered document text: the
// categories populate a fresh record in fixed order, and the body
// weight found by the general section feeds the macronutrient per-kg
// computation.
func Extract(raw string) *Record {
	text := Normalize(raw)
	rec := NewRecord()

	ExtractGeneralInfo(rec, text.Display, text.Numeric)
	ExtractStatistics(rec, text.Numeric)

	weightKg, _ := rec.Float("Weight_kg")
	ExtractMacronutrients(rec, text.Numeric, weightKg)

	ExtractMinerals(rec, text.Numeric)
	ExtractVitamins(rec, text.Numeric)
	ExtractAminoAcids(rec, text.Numeric)
	ExtractFattyAcids(rec, text.Numeric)
	ExtractRatios(rec, text.Numeric)
	ExtractINQ(rec, text.Numeric)

	return rec
}
