package lexicon

// Synonym maps one surface form (lowercase, as it may appear in user text,
// including hyphenation/spacing variants and brand names) to the canonical
// compound name.
type Synonym struct {
	Surface   string
	Canonical string
}

// compoundSynonyms is ordered: detection scans it top to bottom and reports
// canonical names in the order their first surface form matched.
var compoundSynonyms = []Synonym{
	{"bpc-157", "BPC-157"},
	{"bpc157", "BPC-157"},
	{"body protective compound", "BPC-157"},
	{"tb-500", "TB-500"},
	{"tb500", "TB-500"},
	{"thymosin beta", "TB-500"},
	{"semaglutide", "Semaglutide"},
	{"ozempic", "Semaglutide"},
	{"wegovy", "Semaglutide"},
	{"rybelsus", "Semaglutide"},
	{"tirzepatide", "Tirzepatide"},
	{"mounjaro", "Tirzepatide"},
	{"zepbound", "Tirzepatide"},
	{"ghk-cu", "GHK-Cu"},
	{"ghk copper", "GHK-Cu"},
	{"ipamorelin", "Ipamorelin"},
	{"cjc-1295", "CJC-1295"},
	{"cjc1295", "CJC-1295"},
	{"ghrp-6", "GHRP-6"},
	{"ghrp6", "GHRP-6"},
	{"ghrp-2", "GHRP-2"},
	{"ghrp2", "GHRP-2"},
	{"melanotan", "Melanotan II"},
	{"mt-2", "Melanotan II"},
	{"mt2", "Melanotan II"},
	{"pt-141", "PT-141"},
	{"pt141", "PT-141"},
	{"bremelanotide", "PT-141"},
	{"epitalon", "Epitalon"},
	{"epithalon", "Epitalon"},
	{"semax", "Semax"},
	{"selank", "Selank"},
	{"dihexa", "Dihexa"},
	{"kisspeptin", "Kisspeptin"},
	{"mots-c", "MOTS-c"},
	{"motsc", "MOTS-c"},
	{"ss-31", "SS-31"},
	{"elamipretide", "SS-31"},
	{"pentosan", "Pentosan"},
	{"bpc", "BPC-157"},
	{"aod-9604", "AOD-9604"},
	{"aod9604", "AOD-9604"},
	{"tesamorelin", "Tesamorelin"},
	{"sermorelin", "Sermorelin"},
	{"hexarelin", "Hexarelin"},
	{"igf-1", "IGF-1"},
	{"igf1", "IGF-1"},
	{"mgf", "MGF"},
	{"mechano growth factor", "MGF"},
	{"follistatin", "Follistatin"},
	{"ll-37", "LL-37"},
}
