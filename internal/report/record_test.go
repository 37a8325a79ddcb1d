package report

import "testing"

const sampleReport = `Report del Calcolo intake alimentare
Maria Bianchi
Visita del: 12/03/2024
Sesso: Femmina
Et√†: 45
Altezza: cm 168
Peso: kg 65,0
BMI (Body Mass Index) 23,0
BSA (Body Surface Area) m¬≤ 1,74
BMR (Basal Metabolic Rate) kcal 1.380,5
TDEE (Total Daily Energy Expenditure): kcal 2.140
Differenza dal TDEE: 510 kcal (23,8 %)
Differenza dal BMR: 249,5 kcal (18,1 %)
Proteine per kg di peso attuale: 0,77 g
kcal per kg di peso attuale: 25,08 kcal
Proteine per kg di peso ideale BMI: 0,8 g
kcal per kg di peso ideale BMI: 26,1 kcal
MACRONUTRIENTI
Protidi g 50
Glucidi g 200
Lipidi g 70
Alcool g 0
Proteine animali g 28,5
Proteine vegetali g 21,5
Colesterolo mg 260
Zuccheri semplici g 80,2
Zuccheri complessi g 119,8
Fibra g 22,4
Acqua g 1.250,3
VITAMINE
Acido pantotenico mg 4,8
Œ≤-Carotene ¬µg 2.500
Biotina ¬µg 28
Folati ¬µg 320
Niacina mg 18,2
Œ±-Tocoferolo mg 9,1
Vitamina A ¬µg RE 700
Vitamina B1 mg 1,1
Vitamina B2 mg 1,4
Vitamina B6 mg 1,6
Vitamina B12 ¬µg 2,5
Vitamina C mg 110
Vitamina D ¬µg 3,2
Vitamina E mg TE 10,5
Vitamina K ¬µg 95
MINERALI
Calcio mg 980
Cromo ¬µg 32
Ferro mg 11,8
Fluoruri ¬µg 410
Fosforo mg 1.120
Iodio ¬µg 98
Magnesio mg 310
Manganese mg 2,6
Molibdeno ¬µg 75
Potassio mg 3.250
Rame mg 1,3
Selenio ¬µg 48
Sodio mg 2.150
Zinco mg 9,4
AMINOACIDI
Acido aspartico mg 4.850
Acido glutamico mg 9.870
Alanina mg 2.340
Arginina mg 2.910
Cisteina mg 640
Fenilalanina mg 2.280
Glicina mg 2.110
Isoleucina mg 2.190
Istidina mg 1.260
Leucina mg 3.740
Lisina mg 3.190
Metionina mg 1.090
Prolina mg 3.420
Serina mg 2.300
Treonina mg 1.900
Tirosina mg 1.760
Triptofano mg 560
Valina mg 2.520
ACIDI GRASSI
Acidi grassi saturi g 22,4
Acidi grassi insaturi g 41,2
Acidi grassi monoinsaturi g 28,9
Acidi grassi polinsaturi g 12,3
Acido laurico g 0,6
Acido miristico g 1,8
Acido palmitico g 11,2
Altri acidi grassi saturi g 8,8
Acido oleico g 24,6
Altri acidi grassi monoinsaturi g 4,3
Acido linoleico g 9,8
Acido linolenico g 1,6
Acido eicosapentaenoico g 0,3
Acido docosaesaenoico g 0,5
AGPn-6 g 10,1
AGPn-3 g 2,2
RAPPORTI E INDICI
Acidi grassi saturi / insaturi 0,54
Acidi grassi monoinsaturi / polinsaturi 2,35
Proteine animali / vegetali 1,33
MAI - Adeguatezza mediterranea 2,1
IA - Aterogenicit√† 0,45
IT - Trombogenicit√† 0,62
CSI - Colesterolo-acidi grassi saturi 24,3
INQ
Calcio 0,82
Ferro 1,05
Folati 0,95
Fosforo 1,4
Magnesio 1,1
Molibdeno 1,2
Niacina 1,3
Protidi 1,5
Rame 1,25
Selenio 0,9
Vitamina A 1,15
Vitamina B1 0,98
Vitamina B12 1,45
Vitamina B2 1,05
Vitamina B6 1,2
Vitamina C 1,75
Vitamina D 0,4
Zinco 0,88
`

func TestExtractSampleReport(t *testing.T) {
	rec := Extract(sampleReport)

	if name, _ := rec.Text("Patient_Name"); name != "Maria Bianchi" {
		t.Fatalf("Patient_Name=%q", name)
	}
	if gender, _ := rec.Int("Gender"); gender != 0 {
		t.Fatalf("Gender=%d", gender)
	}
	if weight, _ := rec.Float("Weight_kg"); weight != 65.0 {
		t.Fatalf("Weight_kg=%v", weight)
	}

	floats := map[string]float64{
		"Diff_TDEE_kcal":     510,
		"Total_kcal":         1630,
		"kcal_per_kg":        25.08,
		"Water_g":            1250.3,
		"Calcio_mg":          980,
		"Potassio_mg":        3250,
		"Œ≤-Carotene_¬µg":      2500,
		"Vitamina A_¬µg_RE":   700,
		"Vitamina B1_mg":     1.1,
		"Vitamina B12_¬µg":    2.5,
		"Vitamina E_mg_TE":   10.5,
		"Glutamic_mg":        9870,
		"Tryptophan_mg":      560,
		"Saturated":          22.4,
		"Omega6":             10.1,
		"Mono_Poli_Unsaturated": 2.35,
		"CSI":                24.3,
		"INQ_Ca":             0.82,
		"INQ_VitB1":          0.98,
		"INQ_VitB12":         1.45,
		"INQ_Zn":             0.88,
	}
	for key, want := range floats {
		got, ok := rec.Float(key)
		if !ok {
			t.Fatalf("%s absent", key)
		}
		if got != want {
			t.Fatalf("%s=%v want %v", key, got, want)
		}
	}
}

func TestExtractIdempotent(t *testing.T) {
	first := Extract(sampleReport)
	second := Extract(sampleReport)

	firstKeys := first.Keys()
	secondKeys := second.Keys()
	if len(firstKeys) != len(secondKeys) {
		t.Fatalf("key count %d vs %d", len(firstKeys), len(secondKeys))
	}
	for i, key := range firstKeys {
		if secondKeys[i] != key {
			t.Fatalf("key order differs at %d: %s vs %s", i, key, secondKeys[i])
		}
		a, okA := first.Get(key)
		b, okB := second.Get(key)
		if okA != okB || a != b {
			t.Fatalf("value differs for %s: %v/%v vs %v/%v", key, a, okA, b, okB)
		}
	}
}

func TestExtractEmptyDocument(t *testing.T) {
	rec := Extract("")
	if _, ok := rec.Get("Patient_Name"); ok {
		t.Fatal("Patient_Name should be absent")
	}
	if protein, ok := rec.Float("Protein_g"); !ok || protein != 0.0 {
		t.Fatalf("Protein_g=%v ok=%v", protein, ok)
	}
	if _, ok := rec.Get("Calcio_mg"); ok {
		t.Fatal("Calcio_mg should be absent")
	}
}
