package report

// FieldSpec is one extractable field: the output key it populates, the
// literal label text that precedes the value in the report, and the
// unit text printed between label and value (empty when the report
// prints the value right after the label).
type FieldSpec struct {
	Key   string
	Label string
	Unit  string
}

// Category groups fields sharing one pattern shape. Tight categories
// allow the unit and value to follow the label without mandatory
// whitespace; Anchored categories wrap the label in word boundaries so
// a label that is a prefix of another ("Vitamina B1" vs "Vitamina B12")
// cannot match inside the longer one.
type Category struct {
	Name     string
	Fields   []FieldSpec
	Tight    bool
	Anchored bool
}

var Minerals = Category{
	Name: "minerals",
	Fields: []FieldSpec{
		{Key: "Calcio_mg", Label: "Calcio", Unit: "mg"},
		{Key: "Cromo_¬µg", Label: "Cromo", Unit: "¬µg"},
		{Key: "Ferro_mg", Label: "Ferro", Unit: "mg"},
		{Key: "Fluoruri_¬µg", Label: "Fluoruri", Unit: "¬µg"},
		{Key: "Fosforo_mg", Label: "Fosforo", Unit: "mg"},
		{Key: "Iodio_¬µg", Label: "Iodio", Unit: "¬µg"},
		{Key: "Magnesio_mg", Label: "Magnesio", Unit: "mg"},
		{Key: "Manganese_mg", Label: "Manganese", Unit: "mg"},
		{Key: "Molibdeno_¬µg", Label: "Molibdeno", Unit: "¬µg"},
		{Key: "Potassio_mg", Label: "Potassio", Unit: "mg"},
		{Key: "Rame_mg", Label: "Rame", Unit: "mg"},
		{Key: "Selenio_¬µg", Label: "Selenio", Unit: "¬µg"},
		{Key: "Sodio_mg", Label: "Sodio", Unit: "mg"},
		{Key: "Zinco_mg", Label: "Zinco", Unit: "mg"},
	},
}

var Vitamins = Category{
	Name: "vitamins",
	Fields: []FieldSpec{
		{Key: "Acido pantotenico_mg", Label: "Acido pantotenico", Unit: "mg"},
		{Key: "Œ≤-Carotene_¬µg", Label: "Œ≤-Carotene", Unit: "¬µg"},
		{Key: "Biotina_¬µg", Label: "Biotina", Unit: "¬µg"},
		{Key: "Folati_¬µg", Label: "Folati", Unit: "¬µg"},
		{Key: "Niacina_mg", Label: "Niacina", Unit: "mg"},
		{Key: "Œ±-Tocoferolo_mg", Label: "Œ±-Tocoferolo", Unit: "mg"},
		{Key: "Vitamina A_¬µg_RE", Label: "Vitamina A", Unit: "¬µg RE"},
		{Key: "Vitamina B1_mg", Label: "Vitamina B1", Unit: "mg"},
		{Key: "Vitamina B2_mg", Label: "Vitamina B2", Unit: "mg"},
		{Key: "Vitamina B6_mg", Label: "Vitamina B6", Unit: "mg"},
		{Key: "Vitamina B12_¬µg", Label: "Vitamina B12", Unit: "¬µg"},
		{Key: "Vitamina C_mg", Label: "Vitamina C", Unit: "mg"},
		{Key: "Vitamina D_¬µg", Label: "Vitamina D", Unit: "¬µg"},
		{Key: "Vitamina E_mg_TE", Label: "Vitamina E", Unit: "mg TE"},
		{Key: "Vitamina K_¬µg", Label: "Vitamina K", Unit: "¬µg"},
	},
}

var AminoAcids = Category{
	Name:  "amino_acids",
	Tight: true,
	Fields: []FieldSpec{
		{Key: "Aspartic_mg", Label: "Acido aspartico", Unit: "mg"},
		{Key: "Glutamic_mg", Label: "Acido glutamico", Unit: "mg"},
		{Key: "Alanine_mg", Label: "Alanina", Unit: "mg"},
		{Key: "Arginine_mg", Label: "Arginina", Unit: "mg"},
		{Key: "Cysteine_mg", Label: "Cisteina", Unit: "mg"},
		{Key: "Phenylalanine_mg", Label: "Fenilalanina", Unit: "mg"},
		{Key: "Glycine_mg", Label: "Glicina", Unit: "mg"},
		{Key: "Isoleucine_mg", Label: "Isoleucina", Unit: "mg"},
		{Key: "Histidine_mg", Label: "Istidina", Unit: "mg"},
		{Key: "Leucine_mg", Label: "Leucina", Unit: "mg"},
		{Key: "Lysine_mg", Label: "Lisina", Unit: "mg"},
		{Key: "Methionine_mg", Label: "Metionina", Unit: "mg"},
		{Key: "Proline_mg", Label: "Prolina", Unit: "mg"},
		{Key: "Serine_mg", Label: "Serina", Unit: "mg"},
		{Key: "Threonine_mg", Label: "Treonina", Unit: "mg"},
		{Key: "Tyrosine_mg", Label: "Tirosina", Unit: "mg"},
		{Key: "Tryptophan_mg", Label: "Triptofano", Unit: "mg"},
		{Key: "Valine_mg", Label: "Valina", Unit: "mg"},
	},
}

var FattyAcids = Category{
	Name:  "fatty_acids",
	Tight: true,
	Fields: []FieldSpec{
		{Key: "Saturated", Label: "Acidi grassi saturi", Unit: "g"},
		{Key: "Unsaturated", Label: "Acidi grassi insaturi", Unit: "g"},
		{Key: "MonoUnsaturated", Label: "Acidi grassi monoinsaturi", Unit: "g"},
		{Key: "PolyUnsaturated", Label: "Acidi grassi polinsaturi", Unit: "g"},
		{Key: "Lauric", Label: "Acido laurico", Unit: "g"},
		{Key: "Myristic", Label: "Acido miristico", Unit: "g"},
		{Key: "Palmitic", Label: "Acido palmitico", Unit: "g"},
		{Key: "OtherSaturated", Label: "Altri acidi grassi saturi", Unit: "g"},
		{Key: "Oleic", Label: "Acido oleico", Unit: "g"},
		{Key: "OtherMonounsaturated", Label: "Altri acidi grassi monoinsaturi", Unit: "g"},
		{Key: "Linoleic", Label: "Acido linoleico", Unit: "g"},
		{Key: "Linolenic", Label: "Acido linolenico", Unit: "g"},
		{Key: "EPA", Label: "Acido eicosapentaenoico", Unit: "g"},
		{Key: "DHA", Label: "Acido docosaesaenoico", Unit: "g"},
		{Key: "Omega6", Label: "AGPn-6", Unit: "g"},
		{Key: "Omega3", Label: "AGPn-3", Unit: "g"},
	},
}

var Ratios = Category{
	Name:  "ratios",
	Tight: true,
	Fields: []FieldSpec{
		{Key: "Saturated_Unsaturated", Label: "Acidi grassi saturi / insaturi"},
		{Key: "Mono_Poli_Unsaturated", Label: "Acidi grassi monoinsaturi / polinsaturi"},
		{Key: "Animal_Vegetable", Label: "Proteine animali / vegetali"},
		{Key: "MAI", Label: "MAI - Adeguatezza mediterranea"},
		{Key: "IA", Label: "IA - Aterogenicit√†"},
		{Key: "IT", Label: "IT - Trombogenicit√†"},
		{Key: "CSI", Label: "CSI - Colesterolo-acidi grassi saturi"},
	},
}

var INQ = Category{
	Name:     "inq",
	Tight:    true,
	Anchored: true,
	Fields: []FieldSpec{
		{Key: "INQ_Ca", Label: "Calcio"},
		{Key: "INQ_Fe", Label: "Ferro"},
		{Key: "INQ_Folati", Label: "Folati"},
		{Key: "INQ_P", Label: "Fosforo"},
		{Key: "INQ_Mg", Label: "Magnesio"},
		{Key: "INQ_Mo", Label: "Molibdeno"},
		{Key: "INQ_Niacina", Label: "Niacina"},
		{Key: "INQ_Prot", Label: "Protidi"},
		{Key: "INQ_Cu", Label: "Rame"},
		{Key: "INQ_Se", Label: "Selenio"},
		{Key: "INQ_VitA", Label: "Vitamina A"},
		{Key: "INQ_VitB1", Label: "Vitamina B1"},
		{Key: "INQ_VitB12", Label: "Vitamina B12"},
		{Key: "INQ_VitB2", Label: "Vitamina B2"},
		{Key: "INQ_VitB6", Label: "Vitamina B6"},
		{Key: "INQ_VitC", Label: "Vitamina C"},
		{Key: "INQ_VitD", Label: "Vitamina D"},
		{Key: "INQ_Zn", Label: "Zinco"},
	},
}
